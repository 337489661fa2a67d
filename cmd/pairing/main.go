package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/pairing/internal/pairing/app"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pairing",
		Short:         "One-time pairing codes for QR sign-in",
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file (defaults to $CONFIG_PATH, then ./"+app.DefaultConfigFile+")")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP service",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := app.Load(configPath)
				if err != nil {
					return err
				}

				application, err := app.New(cmd.Context(), cfg)
				if err != nil {
					return fmt.Errorf("failed to initialize application: %w", err)
				}
				return application.Run()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := app.Load(configPath)
				if err != nil {
					return err
				}

				db, err := app.OpenStore(cmd.Context(), cfg, app.NewLogger(cfg))
				if err != nil {
					return err
				}
				return db.Close()
			},
		},
		&cobra.Command{
			Use:   "sweep",
			Short: "Delete expired pairing codes and sessions once and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := app.Load(configPath)
				if err != nil {
					return err
				}

				logger := app.NewLogger(cfg)
				db, err := app.OpenStore(cmd.Context(), cfg, logger)
				if err != nil {
					return err
				}
				defer db.Close()

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				result, err := app.NewPairingService(cfg, db).SweepExpired(ctx)
				if err != nil {
					return fmt.Errorf("sweep failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d codes and %d sessions\n", result.Links, result.Sessions)
				return nil
			},
		},
	)

	return root
}
