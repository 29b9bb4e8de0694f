// Command streams-demo runs the numbered pipeline and collector problems.
//
//	streams-demo list
//	streams-demo run                      # every problem
//	streams-demo run grouping 14 -w 8     # a selection, eight at a time
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/streamkit/version"
)

const serviceName = "streams-demo"

var configFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Lazy pipelines and collectors, one problem at a time",
		Long: `streams-demo runs eighteen small problems built on streamkit's lazy
pipelines, composable collectors and recipes, printing each problem's
results in order.

Problems can be selected by number or by name; see 'streams-demo list'.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: search cmd/streams-demo/config.yml and ./config.yml)")

	root.AddCommand(newRunCmd(), newListCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
