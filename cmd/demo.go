package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genfactory/app"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the dog and cat lifecycle walkthrough once and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(func(svc *app.Service) error {
			r, err := svc.Demo(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !r.CatKept {
				return fmt.Errorf("cat %s was not kept across the dog restart", r.CatID)
			}
			return nil
		})
	},
}
