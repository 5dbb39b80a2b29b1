package relayimpl

import (
	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/formatter"
)

const (
	usageText     = "Пришли ссылку на твит вида:\nhttps://x.com/<user>/status/<id>"
	ackText       = "⏳ Достаю твит..."
	failurePrefix = "Не удалось обработать твит: "
	buttonText    = "Открыть твит"
	albumLinkText = "🔗 Открыть оригинал:"
	captionHeader = " <b>Twitter/X</b>"
)

// Telegram limits.
const (
	MaxAlbumItems = 10
	captionLimit  = 1024
	messageLimit  = 4096
)

// BuildCaption renders the HTML caption of a relayed tweet:
//
//	 <b>Twitter/X</b>
//	👤 <i>author</i>
//
//	text
//
//	🔗 url
//
// The author line and the text block are left out when empty. When limit is
// positive the tweet text is shortened so the caption fits in limit runes.
func BuildCaption(res *domain.FetchResult, limit int) string {
	by := ""
	if res.Author != "" {
		by = "\n👤 <i>" + formatter.EscapeHTML(res.Author) + "</i>"
	}
	tail := "\n\n🔗 " + formatter.EscapeHTML(res.URL)

	body := ""
	if res.Text != "" {
		room := -1
		if limit > 0 {
			room = max(0, limit-formatter.RuneLen(captionHeader+by+tail)-len("\n\n"))
		}
		if text := fitText(res.Text, room); text != "" {
			body = "\n\n" + text
		}
	}

	return captionHeader + by + body + tail
}

// fitText escapes text and shortens it to at most room runes after escaping.
// A negative room means unlimited.
func fitText(text string, room int) string {
	escaped := formatter.EscapeHTML(text)
	if room < 0 || formatter.RuneLen(escaped) <= room {
		return escaped
	}

	n := room
	for n > 1 {
		escaped = formatter.EscapeHTML(formatter.TruncateRunes(text, n))
		over := formatter.RuneLen(escaped) - room
		if over <= 0 {
			return escaped
		}
		n -= over
	}
	return ""
}
