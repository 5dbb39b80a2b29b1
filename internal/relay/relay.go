package relay

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=relay.go -destination=mocks/mock.go
type Client interface {
	// HandleText answers one incoming text message: it relays the tweet
	// linked in text or explains what link is expected. Failures are
	// reported to the chat; an error is returned only when the chat could
	// not be answered at all.
	HandleText(ctx context.Context, chatID int64, text string) error
}
