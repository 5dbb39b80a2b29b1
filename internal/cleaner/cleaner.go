package cleaner

import (
	"context"

	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock.go
type Cleaner interface {
	// Cleanup removes the result's work dir. It is safe to call more than
	// once and never fails; removal errors are only logged.
	Cleanup(res *domain.FetchResult)

	// ScheduleSweep periodically removes work dirs left behind by a crash.
	ScheduleSweep(ctx context.Context) error
}
