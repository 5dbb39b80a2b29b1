package fetcherimpl

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/orgball2608/x-relay-telegram-bot/internal/fetcher"
)

// Format selector: muxed stream up to 720p, else best up to 720p, else best.
const formatSelector = "bv*[height<=720]+ba/best[height<=720]/best"

const mergeFormat = "mp4"

// ytInfo is the subset of the yt-dlp info dict the relay needs.
type ytInfo struct {
	ID                 string       `json:"id"`
	Description        string       `json:"description"`
	Uploader           string       `json:"uploader"`
	UploaderID         string       `json:"uploader_id"`
	WebpageURL         string       `json:"webpage_url"`
	Entries            []*ytInfo    `json:"entries"`
	RequestedDownloads []ytDownload `json:"requested_downloads"`
}

type ytDownload struct {
	Filepath string `json:"filepath"`
}

// buildArgs returns the yt-dlp command line for one tweet. The JSON info is
// printed after the download so requested_downloads carries final paths.
func buildArgs(workDir, url string) []string {
	return []string{
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--no-progress",
		"--format", formatSelector,
		"--merge-output-format", mergeFormat,
		"--output", outputTemplate(workDir),
		"--dump-single-json",
		"--no-simulate",
		"--", url,
	}
}

func outputTemplate(workDir string) string {
	return filepath.Join(workDir, "%(id)s_%(autonumber)s.%(ext)s")
}

// decodeInfo parses the extractor output. Stray lines before the JSON
// document are tolerated by falling back to the last line.
func decodeInfo(out []byte) (*ytInfo, error) {
	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return nil, fetcher.ErrEmptyInfo
	}

	var info ytInfo
	err := json.Unmarshal(out, &info)
	if err != nil {
		idx := bytes.LastIndexByte(out, '\n')
		if idx < 0 {
			return nil, err
		}
		if lastErr := json.Unmarshal(out[idx+1:], &info); lastErr != nil {
			return nil, err
		}
	}
	return &info, nil
}

// primary returns the first entry of a collection, or info itself.
func (i *ytInfo) primary() *ytInfo {
	for _, e := range i.Entries {
		if e != nil {
			return e
		}
	}
	return i
}

func (i *ytInfo) text() string {
	return strings.TrimSpace(i.Description)
}

func (i *ytInfo) author() string {
	if uploader := strings.TrimSpace(i.Uploader); uploader != "" {
		return uploader
	}
	return strings.TrimSpace(i.UploaderID)
}

func (i *ytInfo) pageURL(fallback string) string {
	if i.WebpageURL != "" {
		return i.WebpageURL
	}
	return fallback
}
