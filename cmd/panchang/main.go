// Command panchang resolves nakshatra names, normalizes provider times and
// fetches a panchang day from the command line
package main

import (
	"fmt"
	"io"
	"os"

	"panchang/internal/platform/config"
	"panchang/internal/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, config.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, cfg config.Conf) *cobra.Command {
	root := &cobra.Command{
		Use:           "panchang",
		Short:         "Panchangam tools: nakshatra resolution, display times, day lookups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				opt := logger.FromEnv()
				opt.Level = "debug"
				opt.Writer = cmd.ErrOrStderr()
				logger.Init(opt)
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newResolveCmd(),
		newNormalizeCmd(),
		newFetchCmd(cfg),
	)
	return root
}
