package cmd

import (
	"fmt"
	"pairingcheck/internal/config"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newPairsCmd creates the pairs command.
func newPairsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List the effective pair table",
		Long: `Pairs prints every configured pair with its open and close aliases, in
table order. Use --pairs to inspect a YAML pair table before using it.`,
		RunE: runPairs,
	}

	cmd.Flags().String("pairs", "", "YAML pair table (default: built-in table)")
	return cmd
}

func runPairs(cmd *cobra.Command, _ []string) error {
	table, err := config.LoadPairTable(cfg.Check.PairsFile)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPAIR\tOPEN\tCLOSE")
	for id, spec := range table.Specs() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			id, spec.Label(), strings.Join(spec.Open(), ","), strings.Join(spec.Close(), ","))
	}
	return w.Flush()
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	rootCmd.AddCommand(newPairsCmd())
}
