package cleanerimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
)

// ScheduleSweep starts a job that removes stale work dirs every
// sweep interval until ctx is cancelled.
func (c *CleanerImpl) ScheduleSweep(ctx context.Context) error {
	if c.sweepInterval <= 0 {
		c.logger.Info("Stale work dir sweep disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create sweep scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(c.sweepInterval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			removed, err := c.Sweep()
			if err != nil {
				c.logger.Error("Stale work dir sweep failed", "error", err)
				return
			}
			if removed > 0 {
				c.logger.Info("Removed stale work dirs", "count", removed)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		c.logger.Info("Stopping sweep scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.logger.Error("Failed to shut down sweep scheduler", "error", err)
		}
	}()

	return nil
}

// Sweep removes work dirs under the temp root that are older than the
// configured max age and returns how many were removed.
func (c *CleanerImpl) Sweep() (int, error) {
	root := c.tempRoot
	if root == "" {
		root = os.TempDir()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("read temp root: %w", err)
	}

	cutoff := c.now().Add(-c.maxAge)
	removed := 0
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), domain.WorkDirPrefix) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		dir := filepath.Join(root, e.Name())
		if err := os.RemoveAll(dir); err != nil {
			c.logger.Warn("Failed to remove stale work dir", "dir", dir, "error", err)
			continue
		}
		removed++
	}

	c.metrics.StaleDirsRemoved(removed)
	return removed, nil
}
