// Package demos holds eighteen numbered problems that exercise the pipeline,
// collect and recipes packages, and a Runner that executes a selection of
// them.
//
// Each problem prints its results through a Report. The Runner computes
// problems concurrently, buffers each one's output and writes the buffers in
// selection order, so the printed report does not depend on scheduling.
//
//	runner, err := demos.NewRunner(os.Stdout, demos.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	problems, err := demos.Default().Select([]string{"grouping", "14"})
//	if err != nil {
//		return err
//	}
//	summary, err := runner.Run(ctx, problems)
package demos
