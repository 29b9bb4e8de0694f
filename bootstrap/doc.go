// Package bootstrap gives streamkit command-line tools a uniform lifecycle.
//
// NewApp applies config defaults, validates the config and initializes the
// logger. RunTask runs start hooks, the task and stop hooks, canceling the
// task on SIGINT or SIGTERM:
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.OnStop(func(ctx context.Context) error { return shutdown(ctx) })
//	return app.RunTask(ctx, run)
package bootstrap
