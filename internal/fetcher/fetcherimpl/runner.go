package fetcherimpl

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// defaultWaitDelay bounds how long Run waits for the output pipes after the
// process was killed. Children such as ffmpeg may still hold them open.
const defaultWaitDelay = 5 * time.Second

// Runner executes the extractor with the given arguments and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner runs a yt-dlp compatible binary.
type ExecRunner struct {
	Binary string
	// WaitDelay overrides defaultWaitDelay when positive.
	WaitDelay time.Duration
}

func (r ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.WaitDelay = defaultWaitDelay
	if r.WaitDelay > 0 {
		cmd.WaitDelay = r.WaitDelay
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", r.Binary, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", r.Binary, err)
	}
	return out, nil
}

// lastLine returns the last non-empty line of s. yt-dlp puts the reason of a
// failure on its final "ERROR:" line.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
