package relayimpl

import (
	"io"
	"os"

	"github.com/orgball2608/x-relay-telegram-bot/internal/cleaner"
	"github.com/orgball2608/x-relay-telegram-bot/internal/fetcher"
	"github.com/orgball2608/x-relay-telegram-bot/internal/metrics"
	"github.com/orgball2608/x-relay-telegram-bot/internal/relay"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Fetcher  fetcher.Client
	Cleaner  cleaner.Cleaner
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

type RelayImpl struct {
	Telegram telegram.Client
	Fetcher  fetcher.Client
	Cleaner  cleaner.Cleaner
	Logger   logger.Logger
	Metrics  *metrics.Metrics

	// openFile opens downloaded media read-only.
	openFile func(path string) (io.ReadCloser, error)
}

func New(opts Opts) *RelayImpl {
	return &RelayImpl{
		Telegram: opts.Telegram,
		Fetcher:  opts.Fetcher,
		Cleaner:  opts.Cleaner,
		Logger:   opts.Logger.WithComponent("Relay"),
		Metrics:  opts.Metrics,
		openFile: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

var _ relay.Client = (*RelayImpl)(nil)
