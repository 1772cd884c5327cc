package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genfactory/app"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered animal keys and whether an instance is live",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(func(svc *app.Service) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tTYPE\tLIVE")
			for _, r := range svc.Registrations() {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Key, r.Type, r.Live)
			}
			return tw.Flush()
		})
	},
}
