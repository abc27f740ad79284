package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ecotools/biodigest/api/simulation"
	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/infra/logger"
	"github.com/ecotools/biodigest/metrics"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the model over HTTP with Prometheus metrics",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	addr := cfg.Server.Address
	if serveAddr != "" {
		addr = serveAddr
	}

	log := logger.New("serve")

	var rec *metrics.Recorder
	if !cfg.Server.MetricsDisabled {
		rec, err = metrics.NewRecorder(nil)
		if err != nil {
			return fmt.Errorf("metrics recorder: %w", err)
		}
	}

	mux := http.NewServeMux()
	handler := simulation.New(
		feedstock.Default(),
		cfg.Simulation.TMaxDays,
		cfg.Simulation.NPoints,
		cfg.Simulation.TSTargetPercent,
		log,
		rec,
	)
	handler.Register(mux)
	if !cfg.Server.MetricsDisabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("server shutdown: %v", err)
		}
	}()

	log.Infof("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
