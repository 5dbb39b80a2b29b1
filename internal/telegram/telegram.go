package telegram

import (
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Button is an inline keyboard button that opens URL.
type Button struct {
	Text string
	URL  string
}

// Media is one file to upload. Caption is sent with HTML parse mode.
type Media struct {
	Name    string
	Reader  io.Reader
	IsVideo bool
	Caption string
}

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	// SendHTMLMessage sends text with HTML parse mode and link previews on.
	SendHTMLMessage(chatID int64, text string, button *Button) (int, error)
	// SendButtonMessage sends plain text carrying a single inline button.
	SendButtonMessage(chatID int64, text string, button Button) (int, error)

	SendPhoto(chatID int64, media Media, button *Button) error
	SendVideo(chatID int64, media Media, button *Button) error
	SendMediaGroup(chatID int64, media []Media) error
}
