package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.ozon.dev/safariproxd/webserver/internal/config"
	"gitlab.ozon.dev/safariproxd/webserver/internal/infra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		workers    int
	)

	rootCmd := &cobra.Command{
		Use:           "webserver",
		Short:         "Single-route web server backed by a fixed-size worker pool",
		Run:           func(cmd *cobra.Command, args []string) { _ = cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file")

	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("workers") {
			cfg.Pool.Workers = workers
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
		}
		return cfg, nil
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Accepts connections and answers them on the worker pool.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := infra.SetupLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
				return err
			}

			ctx, stop := infra.SignalContext(cmd.Context())
			defer stop()
			return runServe(ctx, cfg)
		},
	}
	serveCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "Number of pool workers")
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "check-config",
		Short: "Validates the configuration and prints the effective values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	})

	return rootCmd
}
