package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
)

// App gives a command-line task a uniform lifecycle: validated config, a
// logger, start and stop hooks, and cancellation on SIGINT/SIGTERM.
// The type parameter C is the config type.
//
// Example:
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStop(shutdownTracing)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return runner.Run(ctx, problems)
//	})
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	onStart         []Hook
	onStop          []Hook
}

// NewApp creates an application from a typed config. It applies defaults,
// validates the config and initializes the logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.InvalidConfig(err.Error()).WithCause(err)
	}

	base := cfg.GetServiceConfig()
	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&base.Logging)
		app.Logger = logger.GetGlobalLogger()
	}
	return app, nil
}

// RunTask runs OnStart hooks, then task, then OnStop hooks. The task's
// context is canceled on SIGINT or SIGTERM. Stop hooks run even when start
// hooks or the task fail; the first failure is returned.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	start := time.Now()
	a.Logger.Info("starting", logger.Fields("name", a.Name, "version", a.Version))

	taskCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var taskErr error
	if err := runHooks(taskCtx, a.onStart); err != nil {
		taskErr = errors.Internal(err).WithDetail("phase", "start")
	} else {
		taskErr = task(taskCtx)
	}
	if taskCtx.Err() != nil && ctx.Err() == nil {
		a.Logger.Warn("interrupted by signal")
	}

	stopErr := a.shutdown()
	a.Logger.Debug("finished", logger.DurationFields("task", time.Since(start)))
	if taskErr != nil {
		return taskErr
	}
	return stopErr
}

// shutdown runs OnStop hooks within the graceful timeout on a context that
// is independent of the task's.
func (a *App[C]) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()
	if err := runStopHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("shutdown completed with errors", logger.ErrorFields("shutdown", err))
		return err
	}
	return nil
}
