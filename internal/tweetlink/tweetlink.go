// Package tweetlink finds X/Twitter status links in free-form chat text.
package tweetlink

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	statusRe = regexp.MustCompile(`(?i)https?://(www\.)?(twitter\.com|x\.com)/\S+/status/\S+`)
	validate = validator.New()
)

// Extract returns the first status link in text. The link is returned exactly
// as written. A candidate that is not a well-formed URL counts as no match.
func Extract(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	link := statusRe.FindString(text)
	if link == "" {
		return "", false
	}

	if err := validate.Var(link, "url"); err != nil {
		return "", false
	}
	return link, true
}
