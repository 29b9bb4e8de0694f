package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/streamkit/bootstrap"
	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/demos"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/version"
)

// flagKeys maps run flags to their config paths.
var flagKeys = map[string]string{
	"problem": "demo.problems",
	"workers": "demo.workers",
	"run-id":  "demo.run_id",
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range demos.Default().All() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Slug, p.Title)
			}
			return w.Flush()
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [problem...]",
		Short: "Run problems by id or slug, or all of them",
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var slugs []string
			for _, p := range demos.Default().All() {
				slugs = append(slugs, p.Slug)
			}
			return slugs, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: runProblems,
	}
	cmd.Flags().StringSliceP("problem", "p", nil, "problem ids or slugs to run")
	cmd.Flags().IntP("workers", "w", 0, "problems to run concurrently")
	cmd.Flags().String("run-id", "", "run identifier (UUID); generated when empty")
	return cmd
}

// loadConfig reads the config file, environment and the command's flags.
func loadConfig(cmd *cobra.Command) (*AppConfig, error) {
	cfg := &AppConfig{}
	opts := []config.LoaderOption{
		config.WithFlags(cmd.Flags(), flagKeys),
		config.WithDefaults(map[string]any{
			"name":    serviceName,
			"version": version.Get().Short(),
		}),
	}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runProblems(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}
	logger.RegisterDefaults(logger.ComponentRunner, logger.ComponentCLI)

	problems, err := demos.Default().Select(append(cfg.Demo.Problems, args...))
	if err != nil {
		return err
	}

	var metrics *observability.RunMetrics
	app.OnStart(func(ctx context.Context) error {
		shutdown, err := observability.Setup(ctx, cfg.Tracing, cfg.Name, cfg.Version, cfg.Environment)
		if err != nil {
			return err
		}
		app.OnStop(bootstrap.Hook(shutdown))
		metrics, err = observability.NewRunMetrics(observability.Meter(serviceName))
		return err
	})

	return app.RunTask(cmd.Context(), func(ctx context.Context) error {
		runner, err := demos.NewRunner(cmd.OutOrStdout(),
			demos.WithWorkers(cfg.Demo.Workers),
			demos.WithRunID(cfg.Demo.RunID),
			demos.WithMetrics(metrics),
		)
		if err != nil {
			return err
		}

		summary, err := runner.Run(ctx, problems)
		if summary != nil {
			summary.Log(logger.Get(logger.ComponentCLI).WithRunID(runner.RunID()))
		}
		if err != nil {
			return err
		}
		if failed := summary.Failed(); failed > 0 {
			return errors.New(errors.ErrCodeInternal, fmt.Sprintf("%d of %d problems failed", failed, len(problems))).
				WithDetail(logger.FieldRunID, runner.RunID())
		}
		return nil
	})
}
