package main

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"randbg/internal/applier"
	"randbg/internal/cache"
	"randbg/internal/config"
	"randbg/internal/domain"
	"randbg/internal/engine"
	"randbg/internal/notify"
	"randbg/internal/scanner"
	"randbg/internal/selector"
)

// AppOptions assembles the full dependency graph. Kept as a variable so
// tests can validate the graph with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(scanner.NewDirScanner, fx.As(new(domain.Scanner))),
		fx.Annotate(cache.NewFileCache, fx.As(new(domain.Cache))),
		fx.Annotate(selector.NewSystemRand, fx.As(new(domain.Rand))),
		fx.Annotate(selector.NewRandomSelector, fx.As(new(domain.Selector))),
		fx.Annotate(applier.NewCommandApplier, fx.As(new(domain.Applier))),
		notify.NewNotifier,
		engine.NewEngine,
	),
	fx.Invoke(registerHooks),
)

func main() {
	fx.New(
		AppOptions,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	).Run()
}

// newLogger creates the zap logger shared by every component
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// registerHooks runs the engine once on startup and turns its result into
// the process exit code
func registerHooks(lc fx.Lifecycle, shutdowner fx.Shutdowner, eng *engine.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				code := 0
				if err := eng.Run(context.Background()); err != nil {
					logger.Error("Wallpaper rotation failed", zap.Error(err))
					code = 1
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return nil
		},
	})
}
