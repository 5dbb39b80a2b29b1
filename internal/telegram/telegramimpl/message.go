package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
)

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}

// SendMessage sends a plain text message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	return tg.send(chatID, tgbotapi.NewMessage(chatID, text))
}

func (tg *TelegramImpl) SendHTMLMessage(chatID int64, text string, button *telegram.Button) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = false
	if button != nil {
		msg.ReplyMarkup = inlineKeyboard(*button)
	}
	return tg.send(chatID, msg)
}

func (tg *TelegramImpl) SendButtonMessage(chatID int64, text string, button telegram.Button) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = inlineKeyboard(button)
	return tg.send(chatID, msg)
}

func (tg *TelegramImpl) send(chatID int64, msg tgbotapi.MessageConfig) (int, error) {
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		err = tg.sendError(err, "send message")
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, err
	}

	tg.Logger.Debug("Message sent",
		"chatID", chatID,
		"messageID", sentMsg.MessageID)
	return sentMsg.MessageID, nil
}

func inlineKeyboard(b telegram.Button) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL)),
	)
}
