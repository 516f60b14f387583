package main

import (
	"fmt"
	"os"

	"github.com/de-tools/campaign-dash/pkg/metrics"
	"github.com/de-tools/campaign-dash/pkg/runtime/bootstrap"
	"github.com/de-tools/campaign-dash/pkg/runtime/chart"
	"github.com/de-tools/campaign-dash/pkg/server"
	"github.com/de-tools/campaign-dash/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the campaign dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML configuration file (DASH_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger := bootstrap.NewLogger(os.Stdout, cfg.Log.Level)
	ctx := logger.WithContext(cmd.Context())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	svc, err := bootstrap.NewDashboard(ctx, cfg, metrics.NewDashboardMetrics(reg))
	if err != nil {
		logger.Error().Err(err).Msg("dataset could not be loaded")
		return err
	}

	bounds := svc.Bounds()
	logger.Info().
		Str("source", cfg.Dataset.Source).
		Str("variant", cfg.Dashboard.Variant).
		Int("age_min", bounds.AgeMin).
		Int("age_max", bounds.AgeMax).
		Strs("education", bounds.Education).
		Strs("marital_status", bounds.MaritalStatus).
		Msg("dashboard ready")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: svc,
			Renderer:  chart.NewRenderer(),
			Gatherer:  reg,
		},
	})

	return api.Start()
}
