package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/motormon/internal/api"
	"codeberg.org/mutker/motormon/internal/config"
	"codeberg.org/mutker/motormon/internal/logger"
	"codeberg.org/mutker/motormon/internal/machine"
	"codeberg.org/mutker/motormon/internal/pid"
	"codeberg.org/mutker/motormon/internal/uplink"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "motormon",
		Short: "Simulated rotating-machinery condition monitor",
		Long: `motormon simulates a vibration/temperature/fan-speed sensor on a
rotating machine, injects faults on a timed schedule, classifies the
derived features, and produces repair guidance per tick.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().String("model", "", "Path to trained model weights (JSON)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().Bool("telemetry", false, "Record telemetry history to database")
	rootCmd.PersistentFlags().String("database", "", "Path to the telemetry history database")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(tickCmd())
	rootCmd.AddCommand(uploadCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*config.Config, *machine.Machine, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")

	m, err := machine.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, m, nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the telemetry API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, m, err := setup(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			if err := pid.Write(); err != nil {
				return err
			}
			defer pid.Remove()

			server := &http.Server{
				Addr:              cfg.Listen,
				Handler:           api.NewServer(m).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go handleSignals(cancel)

			go func() {
				<-ctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error().Err(err).Msg("Server shutdown failed")
				}
			}()

			logger.Info().Str("listen", cfg.Listen).Msg("Serving telemetry API")

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}

			logger.Info().Msg("Exiting...")

			return nil
		},
	}

	cmd.Flags().String("listen", ":8080", "Listen address")

	return cmd
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation loop, logging each tick",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, m, err := setup(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go handleSignals(cancel)

			return loop(ctx, cfg, m)
		},
	}

	cmd.Flags().Int("interval", 2, "Seconds between ticks")

	return cmd
}

func loop(ctx context.Context, cfg *config.Config, m *machine.Machine) error {
	ticker := time.NewTicker(time.Duration(cfg.Interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Exiting...")
			return nil
		case <-ticker.C:
			record, err := m.Tick(ctx)
			if err != nil {
				return err
			}

			logger.Info().
				Str("mode", record.Mode).
				Str("status", record.Status).
				Float64("rms", record.RMS).
				Float64("kurtosis", record.Kurtosis).
				Float64("temp", record.Temp).
				Int("fan_speed", record.FanSpeed).
				Msg("")
		}
	}
}

func tickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Advance one tick and print the record as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, m, err := setup(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			record, err := m.Tick(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(record)
		},
	}
}

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Tick on an interval and upload readings to the cloud channel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, m, err := setup(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			client, err := uplink.NewClient(uplink.Config{
				URL:      cfg.Upload.URL,
				APIKey:   cfg.Upload.APIKey,
				Interval: cfg.Upload.Interval,
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go handleSignals(cancel)

			ticker := time.NewTicker(client.Interval())
			defer ticker.Stop()

			logger.Info().Str("uplink", client.String()).Msg("Uploading telemetry")

			for {
				select {
				case <-ctx.Done():
					logger.Info().Msg("Exiting...")
					return nil
				case <-ticker.C:
					record, err := m.Tick(ctx)
					if err != nil {
						return err
					}
					if err := client.Send(ctx, record); err != nil {
						logger.Error().Err(err).Msg("Upload failed")
					}
				}
			}
		},
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
