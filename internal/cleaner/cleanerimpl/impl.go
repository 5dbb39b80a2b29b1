package cleanerimpl

import (
	"os"
	"time"

	"github.com/orgball2608/x-relay-telegram-bot/internal/cleaner"
	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
	"github.com/orgball2608/x-relay-telegram-bot/internal/metrics"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/x-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

type CleanerImpl struct {
	tempRoot      string
	sweepInterval time.Duration
	maxAge        time.Duration
	logger        logger.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
}

func New(opts Opts) *CleanerImpl {
	return &CleanerImpl{
		tempRoot:      opts.Config.Fetcher.TempRoot,
		sweepInterval: opts.Config.Cleaner.SweepInterval,
		maxAge:        opts.Config.Cleaner.MaxAge,
		logger:        opts.Logger.WithComponent("Cleaner"),
		metrics:       opts.Metrics,
		now:           time.Now,
	}
}

var _ cleaner.Cleaner = (*CleanerImpl)(nil)

// Cleanup removes res.WorkDir recursively. A missing directory is fine.
func (c *CleanerImpl) Cleanup(res *domain.FetchResult) {
	if res == nil || res.WorkDir == "" {
		return
	}

	if err := os.RemoveAll(res.WorkDir); err != nil {
		err = apperrors.IO(err, "remove work dir")
		c.logger.Error("Failed to clean up work dir", "dir", res.WorkDir, "kind", apperrors.Kind(err), "error", err)
		c.metrics.CleanupFailed()
		return
	}

	c.logger.Debug("Work dir removed", "dir", res.WorkDir)
}
