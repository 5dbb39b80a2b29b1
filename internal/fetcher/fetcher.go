package fetcher

import (
	"context"
	"errors"

	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
)

var ErrEmptyInfo = errors.New("extractor returned no info")

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock.go
type Client interface {
	// Fetch downloads the tweet behind url into a fresh temporary directory.
	// On error nothing is left on disk and no result is returned.
	Fetch(ctx context.Context, url string) (*domain.FetchResult, error)
}
