package domain

import (
	"path/filepath"
	"strings"
)

// WorkDirPrefix names every per-fetch temporary directory.
const WorkDirPrefix = "tg_tweet_"

// VideoExts are the file extensions delivered as video. Everything else is a photo.
var VideoExts = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".webm": {},
	".mov":  {},
	".m4v":  {},
}

// MediaItem is one downloaded file of a tweet.
type MediaItem struct {
	FilePath string
	IsVideo  bool
}

// NewMediaItem classifies path by its extension.
func NewMediaItem(path string) MediaItem {
	_, isVideo := VideoExts[strings.ToLower(filepath.Ext(path))]
	return MediaItem{FilePath: path, IsVideo: isVideo}
}

// Media kinds.
const (
	KindVideo = "video"
	KindPhoto = "photo"
)

func (m MediaItem) Kind() string {
	if m.IsVideo {
		return KindVideo
	}
	return KindPhoto
}

// FetchResult is a fetched tweet. WorkDir owns every file in Items and is
// removed as a whole once the result has been relayed.
type FetchResult struct {
	Text    string
	Author  string
	URL     string
	Items   []MediaItem
	WorkDir string
}
