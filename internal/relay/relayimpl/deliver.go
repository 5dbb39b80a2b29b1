package relayimpl

import (
	"io"
	"path/filepath"

	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
	apperrors "github.com/orgball2608/x-relay-telegram-bot/pkg/errors"
)

// deliver sends res to the chat: a text message for text-only tweets, a
// single photo or video, or an album followed by the link button.
func (r *RelayImpl) deliver(chatID int64, res *domain.FetchResult) error {
	button := telegram.Button{Text: buttonText, URL: res.URL}

	switch len(res.Items) {
	case 0:
		_, err := r.Telegram.SendHTMLMessage(chatID, BuildCaption(res, messageLimit), &button)
		return err
	case 1:
		return r.sendSingle(chatID, res.Items[0], BuildCaption(res, captionLimit), button)
	default:
		return r.sendAlbum(chatID, res, button)
	}
}

func (r *RelayImpl) sendSingle(chatID int64, item domain.MediaItem, caption string, button telegram.Button) error {
	f, err := r.openFile(item.FilePath)
	if err != nil {
		return apperrors.IO(err, "open media")
	}
	defer r.closeFile(item.FilePath, f)

	media := telegram.Media{
		Name:    filepath.Base(item.FilePath),
		Reader:  f,
		IsVideo: item.IsVideo,
		Caption: caption,
	}

	if item.IsVideo {
		err = r.Telegram.SendVideo(chatID, media, &button)
	} else {
		err = r.Telegram.SendPhoto(chatID, media, &button)
	}
	if err != nil {
		return err
	}

	r.Metrics.MediaSent(item.Kind(), 1)
	return nil
}

// sendAlbum uploads at most MaxAlbumItems files as one media group. Every
// file opened here is closed on return, whichever step failed.
func (r *RelayImpl) sendAlbum(chatID int64, res *domain.FetchResult, button telegram.Button) error {
	items := res.Items
	if len(items) > MaxAlbumItems {
		r.Logger.Info("Album truncated", "url", res.URL, "items", len(items), "sent", MaxAlbumItems)
		items = items[:MaxAlbumItems]
	}

	type openedFile struct {
		path string
		rc   io.ReadCloser
	}
	opened := make([]openedFile, 0, len(items))
	defer func() {
		for _, o := range opened {
			r.closeFile(o.path, o.rc)
		}
	}()

	caption := BuildCaption(res, captionLimit)
	group := make([]telegram.Media, 0, len(items))
	for i, item := range items {
		f, err := r.openFile(item.FilePath)
		if err != nil {
			return apperrors.IO(err, "open media")
		}
		opened = append(opened, openedFile{path: item.FilePath, rc: f})

		media := telegram.Media{
			Name:    filepath.Base(item.FilePath),
			Reader:  f,
			IsVideo: item.IsVideo,
		}
		if i == 0 {
			media.Caption = caption
		}
		group = append(group, media)
	}

	if err := r.Telegram.SendMediaGroup(chatID, group); err != nil {
		return err
	}
	for _, item := range items {
		r.Metrics.MediaSent(item.Kind(), 1)
	}

	// Albums cannot carry inline keyboards, so the button goes separately.
	if _, err := r.Telegram.SendButtonMessage(chatID, albumLinkText, button); err != nil {
		return err
	}
	return nil
}

func (r *RelayImpl) closeFile(path string, c io.Closer) {
	if err := c.Close(); err != nil {
		r.Logger.Warn("Failed to close media file", "path", path, "error", err)
	}
}
