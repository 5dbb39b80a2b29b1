package domain

import "testing"

func TestNewMediaItem(t *testing.T) {
	tests := []struct {
		path    string
		isVideo bool
		kind    string
	}{
		{"/tmp/tg_tweet_1/123_00001.mp4", true, "video"},
		{"/tmp/tg_tweet_1/123_00001.MP4", true, "video"},
		{"/tmp/tg_tweet_1/123_00002.mkv", true, "video"},
		{"/tmp/tg_tweet_1/123_00003.webm", true, "video"},
		{"/tmp/tg_tweet_1/123_00004.mov", true, "video"},
		{"/tmp/tg_tweet_1/123_00005.m4v", true, "video"},
		{"/tmp/tg_tweet_1/123_00006.jpg", false, "photo"},
		{"/tmp/tg_tweet_1/123_00007.png", false, "photo"},
		{"/tmp/tg_tweet_1/noext", false, "photo"},
	}

	for _, tt := range tests {
		item := NewMediaItem(tt.path)
		if item.FilePath != tt.path {
			t.Errorf("FilePath = %q, want %q", item.FilePath, tt.path)
		}
		if item.IsVideo != tt.isVideo {
			t.Errorf("NewMediaItem(%q).IsVideo = %v, want %v", tt.path, item.IsVideo, tt.isVideo)
		}
		if item.Kind() != tt.kind {
			t.Errorf("NewMediaItem(%q).Kind() = %q, want %q", tt.path, item.Kind(), tt.kind)
		}
	}
}
