package telegramimpl

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/x-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/retry"
	"go.uber.org/fx"
)

const redactedToken = "<redacted>"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New connects to the Bot API. Network errors are retried; a rejected token
// fails immediately.
func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Telegram")

	connect := func() (*tgbotapi.BotAPI, error) {
		bot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
		if err == nil {
			return bot, nil
		}
		if isAuthError(err) {
			return nil, retry.Permanent(redactToken(err, opts.Config.Telegram.Token))
		}
		return nil, redactToken(err, opts.Config.Telegram.Token)
	}

	tgBot, err := retry.Value(context.Background(), log, "ConnectBotAPI", connect, retry.DefaultConfig())
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	tgBot.Debug = opts.Config.Telegram.Debug
	log.Info("Authorized on Telegram", "bot", tgBot.Self.UserName)

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

// redactToken strips the bot token from err. Transport errors quote the
// request URL, and the token is part of its path.
func redactToken(err error, token string) error {
	if err == nil || token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	if urlErr, ok := err.(*url.Error); ok && !strings.Contains(urlErr.Err.Error(), token) {
		return &url.Error{
			Op:  urlErr.Op,
			URL: strings.ReplaceAll(urlErr.URL, token, redactedToken),
			Err: urlErr.Err,
		}
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, redactedToken))
}

// sendError redacts err and marks it as a delivery failure.
func (tg *TelegramImpl) sendError(err error, message string) error {
	return apperrors.Send(redactToken(err, tg.TgBot.Token), message)
}

func isAuthError(err error) bool {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return tgErr.Code == http.StatusUnauthorized || tgErr.Code == http.StatusNotFound
	}
	return false
}

var _ telegram.Client = (*TelegramImpl)(nil)
