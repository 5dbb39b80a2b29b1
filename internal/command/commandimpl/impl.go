package commandimpl

import (
	"github.com/orgball2608/x-relay-telegram-bot/internal/command"
	"github.com/orgball2608/x-relay-telegram-bot/internal/relay"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Relay    relay.Client
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Relay    relay.Client
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram: opts.Telegram,
		Relay:    opts.Relay,
		Logger:   opts.Logger.WithComponent("Command"),
		Config:   opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
