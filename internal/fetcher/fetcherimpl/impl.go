package fetcherimpl

import (
	"time"

	"github.com/orgball2608/x-relay-telegram-bot/internal/fetcher"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Runner Runner `optional:"true"`
}

type FetcherImpl struct {
	runner   Runner
	tempRoot string
	timeout  time.Duration
	logger   logger.Logger
}

func New(opts Opts) *FetcherImpl {
	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{Binary: opts.Config.Fetcher.Binary}
	}

	return &FetcherImpl{
		runner:   runner,
		tempRoot: opts.Config.Fetcher.TempRoot,
		timeout:  opts.Config.Fetcher.Timeout,
		logger:   opts.Logger.WithComponent("Fetcher"),
	}
}

var _ fetcher.Client = (*FetcherImpl)(nil)
