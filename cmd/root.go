package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/genfactory/app"
	"github.com/kilianp07/genfactory/config"
	"github.com/kilianp07/genfactory/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "genfactory",
	Short:        "Keyed lazy factory demo service",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.AddCommand(demoCmd, listCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// withService loads the configuration and hands a ready Service to fn,
// closing it afterwards.
func withService(fn func(*app.Service) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return fn(svc)
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return withService(func(svc *app.Service) error {
		return svc.Run(ctx, cmd.OutOrStdout())
	})
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
