package app

import (
	"context"
	"errors"

	"github.com/orgball2608/x-relay-telegram-bot/internal/cleaner"
	"github.com/orgball2608/x-relay-telegram-bot/internal/cleaner/cleanerimpl"
	"github.com/orgball2608/x-relay-telegram-bot/internal/command"
	"github.com/orgball2608/x-relay-telegram-bot/internal/command/commandimpl"
	"github.com/orgball2608/x-relay-telegram-bot/internal/fetcher"
	"github.com/orgball2608/x-relay-telegram-bot/internal/fetcher/fetcherimpl"
	"github.com/orgball2608/x-relay-telegram-bot/internal/metrics"
	"github.com/orgball2608/x-relay-telegram-bot/internal/relay"
	"github.com/orgball2608/x-relay-telegram-bot/internal/relay/relayimpl"
	"github.com/orgball2608/x-relay-telegram-bot/internal/server"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		metrics.New,
		server.New,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		), fx.Annotate(
			fetcherimpl.New,
			fx.As(new(fetcher.Client)),
		), fx.Annotate(
			cleanerimpl.New,
			fx.As(new(cleaner.Cleaner)),
		), fx.Annotate(
			relayimpl.New,
			fx.As(new(relay.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	fx.Invoke(run),
)

type runOpts struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     logger.Logger
	Server     *server.Server
	Cleaner    cleaner.Cleaner
	Command    command.Client
}

func run(opts runOpts) {
	log := opts.Logger.WithComponent("App")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	opts.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := opts.Server.Start(startCtx); err != nil {
				return err
			}

			if err := opts.Cleaner.ScheduleSweep(ctx); err != nil {
				log.Error("Schedule sweep error", "Error", err)
				return err
			}

			go func() {
				defer close(done)
				err := opts.Command.HandleCommand(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Command handler stopped", "Error", err)
					if err := opts.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
						log.Error("Failed to request shutdown", "Error", err)
					}
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				log.Warn("Command handler did not stop in time")
			}
			return opts.Server.Stop(stopCtx)
		},
	})
}
