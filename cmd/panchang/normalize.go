package main

import (
	"fmt"

	"panchang/internal/core/displaytime"

	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <time>...",
		Short:   "Print the HH:MM display form of provider time strings",
		Example: `  panchang normalize 2024-01-01T06:15:00+05:30 "06:15:00 +0530"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s, displaytime.Normalize(s))
			}
			return nil
		},
	}
}
