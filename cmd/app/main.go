package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/cmd"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "sistemtransporte",
		Short:        "Transport request coordination service",
		SilenceUsage: true,
	}
	cmd.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var autoMigrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the notification dispatch job",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(c.Flags())
			if err != nil {
				return err
			}
			logger := cmd.NewLogger(configs, os.Stdout)

			db, err := cmd.OpenDatabase(configs)
			if err != nil {
				return err
			}
			if autoMigrate {
				if err = cmd.MigrateDatabase(db); err != nil {
					return err
				}
			}

			app, err := cmd.NewCompositionRoot(configs, db, ports.ClockFunc(time.Now), logger)
			if err != nil {
				return err
			}

			e, err := app.CreateHTTPServer()
			if err != nil {
				return err
			}

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return fmt.Errorf("failed to start jobs: %w", err)
			}
			defer jobManager.StopAll()

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
			}()
			logger.Info("HTTP server started", "port", configs.HTTPPort)

			select {
			case err = <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("Shutting down")
			return e.Shutdown(shutdownCtx)
		},
	}
	c.Flags().BoolVar(&autoMigrate, "migrate", true, "migrate the database before serving")

	return c
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(c.Flags())
			if err != nil {
				return err
			}

			db, err := cmd.OpenDatabase(configs)
			if err != nil {
				return err
			}

			if err = cmd.MigrateDatabase(db); err != nil {
				return err
			}

			cmd.NewLogger(configs, os.Stdout).Info("Database migrated", "driver", configs.DBDriver)
			return nil
		},
	}
}
