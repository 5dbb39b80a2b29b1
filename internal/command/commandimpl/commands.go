package commandimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const greetingMessage = "Привет!\n\nКинь ссылку на твит (x.com / twitter.com) \nя пришлю текст и медиа (фото/видео), чтобы можно было пересылать дальше."

func (c *CommandImpl) processCommand(update tgbotapi.Update) error {
	command := update.Message.Command()
	chatID := update.Message.Chat.ID

	switch command {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, greetingMessage)
		return err
	default:
		c.Logger.Info("Ignoring unknown command", "command", command, "chatID", chatID)
		return nil
	}
}
