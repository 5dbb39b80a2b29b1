package relayimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/orgball2608/x-relay-telegram-bot/internal/metrics"
	"github.com/orgball2608/x-relay-telegram-bot/internal/tweetlink"
	apperrors "github.com/orgball2608/x-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/formatter"
)

// HandleText runs the relay for one text message:
// acknowledge, fetch, deliver, clean up.
func (r *RelayImpl) HandleText(ctx context.Context, chatID int64, text string) error {
	url, ok := tweetlink.Extract(text)
	if !ok {
		r.Metrics.RelayFinished(metrics.OutcomeNoLink)
		_, err := r.Telegram.SendMessage(chatID, usageText)
		return err
	}

	if _, err := r.Telegram.SendMessage(chatID, ackText); err != nil {
		return fmt.Errorf("failed to send acknowledgement: %w", err)
	}

	start := time.Now()
	res, err := r.Fetcher.Fetch(ctx, url)
	r.Metrics.FetchObserved(time.Since(start), err == nil)
	if err != nil {
		r.Logger.Warn("Fetch failed", "chatID", chatID, "url", url, "error", err)
		r.Metrics.RelayFinished(metrics.OutcomeFetchFail)
		return r.reportFailure(chatID, err)
	}
	defer r.Cleaner.Cleanup(res)

	if err := r.deliver(chatID, res); err != nil {
		r.Logger.Error("Delivery failed", "chatID", chatID, "url", res.URL, "items", len(res.Items), "error", err)
		r.Metrics.RelayFinished(metrics.OutcomeSendFail)
		return r.reportFailure(chatID, err)
	}

	r.Logger.Info("Tweet relayed", "chatID", chatID, "url", res.URL, "items", len(res.Items))
	r.Metrics.RelayFinished(metrics.OutcomeDelivered)
	return nil
}

// reportFailure tells the user what went wrong as "<Kind>: <message>".
func (r *RelayImpl) reportFailure(chatID int64, cause error) error {
	text := formatter.TruncateRunes(failureText(cause), messageLimit)
	if _, err := r.Telegram.SendMessage(chatID, text); err != nil {
		return fmt.Errorf("failed to report %q: %w", cause, err)
	}
	return nil
}

func failureText(err error) string {
	return failurePrefix + apperrors.Kind(err) + ": " + err.Error()
}
