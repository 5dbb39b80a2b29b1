package fetcherimpl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orgball2608/x-relay-telegram-bot/internal/domain"
	apperrors "github.com/orgball2608/x-relay-telegram-bot/pkg/errors"
)

// Fetch downloads the tweet at url. Every call gets its own work directory,
// which is removed again if anything fails.
func (f *FetcherImpl) Fetch(ctx context.Context, url string) (*domain.FetchResult, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	workDir, err := os.MkdirTemp(f.tempRoot, domain.WorkDirPrefix)
	if err != nil {
		return nil, apperrors.IO(err, "create work dir")
	}
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}

	start := time.Now()
	result, err := f.fetchInto(ctx, workDir, url)
	if err != nil {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			f.logger.Error("Failed to remove work dir after fetch error", "dir", workDir, "error", rmErr)
		}
		f.logger.Warn("Fetch failed", "url", url, "duration", time.Since(start).String(), "error", err)
		return nil, err
	}

	f.logger.Info("Fetched tweet",
		"url", result.URL,
		"author", result.Author,
		"items", len(result.Items),
		"duration", time.Since(start).String())
	return result, nil
}

func (f *FetcherImpl) fetchInto(ctx context.Context, workDir, url string) (*domain.FetchResult, error) {
	out, err := f.runner.Run(ctx, buildArgs(workDir, url)...)
	if err != nil {
		return nil, apperrors.Fetch(err, "extract tweet")
	}

	info, err := decodeInfo(out)
	if err != nil {
		return nil, apperrors.Fetch(err, "decode extractor output")
	}
	info = info.primary()

	items, err := f.collectItems(workDir, info.RequestedDownloads)
	if err != nil {
		return nil, apperrors.IO(err, "list downloaded files")
	}

	return &domain.FetchResult{
		Text:    info.text(),
		Author:  info.author(),
		URL:     info.pageURL(url),
		Items:   items,
		WorkDir: workDir,
	}, nil
}

// collectItems prefers the extractor's manifest and falls back to every
// regular file in workDir in name order.
func (f *FetcherImpl) collectItems(workDir string, downloads []ytDownload) ([]domain.MediaItem, error) {
	var items []domain.MediaItem
	seen := make(map[string]struct{}, len(downloads))

	for _, d := range downloads {
		if d.Filepath == "" {
			continue
		}

		path := d.Filepath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		path = filepath.Clean(path)

		if !isWithin(workDir, path) {
			f.logger.Warn("Ignoring download outside work dir", "path", path, "dir", workDir)
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}

		st, err := os.Stat(path)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}

		seen[path] = struct{}{}
		items = append(items, domain.NewMediaItem(path))
	}

	if len(items) > 0 {
		return items, nil
	}

	// os.ReadDir sorts by file name.
	entries, err := os.ReadDir(workDir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		items = append(items, domain.NewMediaItem(filepath.Join(workDir, e.Name())))
	}
	return items, nil
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
