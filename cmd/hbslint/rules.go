package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/hbslint/internal/config"
	"github.com/donaldgifford/hbslint/internal/linter"
	"github.com/donaldgifford/hbslint/internal/rules"
)

// newRulesCmd lists the registered rules with their effective severity.
func newRulesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available rules and their configured severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RULE\tSEVERITY\tDESCRIPTION")
			for _, r := range rules.LintRules() {
				sev, enabled := linter.SeverityFor(&cfg.Lint, r.Name())
				if !enabled {
					sev = config.SeverityOff
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name(), sev, r.Description())
			}
			return w.Flush()
		},
	}
}
