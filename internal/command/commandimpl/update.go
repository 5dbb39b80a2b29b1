package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

const (
	pollTimeout    = 60
	defaultWorkers = 64
	drainTimeout   = 10 * time.Second
)

// HandleCommand long-polls Telegram and hands every update to a worker
// pool. It returns when ctx is done or the update channel is closed, after
// waiting up to drainTimeout for in-flight updates.
func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	pool, err := ants.NewPool(c.workers())
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer func() {
		if err := pool.ReleaseTimeout(drainTimeout); err != nil {
			c.Logger.Warn("Worker pool did not drain in time", "error", err)
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.", "workers", pool.Cap())

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			u := update
			if err := pool.Submit(func() { c.handleUpdate(ctx, u) }); err != nil {
				c.Logger.Error("Failed to schedule update", "updateID", u.UpdateID, "error", err)
			}
		}
	}
}

func (c *CommandImpl) workers() int {
	if c.Config != nil && c.Config.Telegram.Workers > 0 {
		return c.Config.Telegram.Workers
	}
	return defaultWorkers
}

func (c *CommandImpl) handleUpdate(ctx context.Context, u tgbotapi.Update) {
	requestID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("Panic recovered while processing an update",
				"requestID", requestID, "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if u.Message == nil {
		return
	}

	from := ""
	if u.Message.From != nil {
		from = u.Message.From.UserName
	}
	c.Logger.Info("Message received",
		"requestID", requestID, "chatID", u.Message.Chat.ID, "from", from, "text", u.Message.Text)

	if u.Message.IsCommand() {
		if err := c.processCommand(u); err != nil {
			c.Logger.Error("Error processing command",
				"requestID", requestID, "command", u.Message.Command(), "error", err)
		}
		return
	}

	if u.Message.Text == "" {
		return
	}

	if err := c.Relay.HandleText(ctx, u.Message.Chat.ID, u.Message.Text); err != nil {
		c.Logger.Error("Error relaying message", "requestID", requestID, "chatID", u.Message.Chat.ID, "error", err)
	}
}
