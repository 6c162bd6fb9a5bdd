package main

import (
	"fmt"
	"text/tabwriter"

	"panchang/internal/core/langhint"
	"panchang/internal/core/nakshatra"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Resolve nakshatra spellings and print the chandrashtama partner",
		Example: `  panchang resolve Ashwini ரோஹிணி
  panchang resolve "Purva Bhadrapada"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tSCRIPT\tINDEX\tCANONICAL\tSTRATEGY\tCHANDRASHTAMA")
			for _, name := range args {
				r := nakshatra.Resolve(name)
				script := langhint.Script(name)
				if !r.Resolved() {
					fmt.Fprintf(w, "%s\t%s\t-\t%s\t%s\t%s\n", name, script, nakshatra.Unknown, r.Strategy, nakshatra.Unknown)
					continue
				}
				target, _ := nakshatra.At(nakshatra.ChandrashtamaIndex(r.Index))
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s (%s)\n", name, script, r.Index, r.Canonical, r.Strategy, target.Tamil, target.English)
			}
			return w.Flush()
		},
	}
}
