package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
)

// SendPhoto uploads a single photo with an optional caption and button.
func (tg *TelegramImpl) SendPhoto(chatID int64, media telegram.Media, button *telegram.Button) error {
	cfg := tgbotapi.NewPhoto(chatID, fileReader(media))
	cfg.Caption = media.Caption
	if media.Caption != "" {
		cfg.ParseMode = tgbotapi.ModeHTML
	}
	if button != nil {
		cfg.ReplyMarkup = inlineKeyboard(*button)
	}

	if _, err := tg.TgBot.Send(cfg); err != nil {
		err = tg.sendError(err, "send photo")
		tg.Logger.Error("Error sending photo", "chatID", chatID, "file", media.Name, "error", err)
		return err
	}

	tg.Logger.Info("Photo sent", "chatID", chatID, "file", media.Name)
	return nil
}

// SendVideo uploads a single video with an optional caption and button.
func (tg *TelegramImpl) SendVideo(chatID int64, media telegram.Media, button *telegram.Button) error {
	cfg := tgbotapi.NewVideo(chatID, fileReader(media))
	cfg.Caption = media.Caption
	cfg.SupportsStreaming = true
	if media.Caption != "" {
		cfg.ParseMode = tgbotapi.ModeHTML
	}
	if button != nil {
		cfg.ReplyMarkup = inlineKeyboard(*button)
	}

	if _, err := tg.TgBot.Send(cfg); err != nil {
		err = tg.sendError(err, "send video")
		tg.Logger.Error("Error sending video", "chatID", chatID, "file", media.Name, "error", err)
		return err
	}

	tg.Logger.Info("Video sent", "chatID", chatID, "file", media.Name)
	return nil
}

// SendMediaGroup uploads an album. Albums cannot carry inline keyboards.
func (tg *TelegramImpl) SendMediaGroup(chatID int64, media []telegram.Media) error {
	group := make([]interface{}, 0, len(media))
	for _, m := range media {
		group = append(group, inputMedia(m))
	}

	if _, err := tg.TgBot.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, group)); err != nil {
		err = tg.sendError(err, "send media group")
		tg.Logger.Error("Error sending media group", "chatID", chatID, "count", len(media), "error", err)
		return err
	}

	tg.Logger.Info("Media group sent", "chatID", chatID, "count", len(media))
	return nil
}

func inputMedia(m telegram.Media) interface{} {
	if m.IsVideo {
		video := tgbotapi.NewInputMediaVideo(fileReader(m))
		video.SupportsStreaming = true
		if m.Caption != "" {
			video.Caption = m.Caption
			video.ParseMode = tgbotapi.ModeHTML
		}
		return video
	}

	photo := tgbotapi.NewInputMediaPhoto(fileReader(m))
	if m.Caption != "" {
		photo.Caption = m.Caption
		photo.ParseMode = tgbotapi.ModeHTML
	}
	return photo
}

func fileReader(m telegram.Media) tgbotapi.FileReader {
	return tgbotapi.FileReader{Name: m.Name, Reader: m.Reader}
}
