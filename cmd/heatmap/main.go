package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/dataset"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(observability.NewMetrics()).ExecuteContext(ctx); err != nil {
		slog.Error("heatmap failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(metrics *observability.Metrics) *cobra.Command {
	var url, out string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render the monthly global land-surface temperature heat map",
		Long: `Fetches the monthly temperature variance dataset, colors each month by
absolute temperature and writes a standalone HTML document with the SVG heat map.
Settings come from the environment (and an optional .env file); flags override them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if url != "" {
				cfg.DatasetURL = url
			}
			if out != "" {
				cfg.OutputPath = out
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return run(cmd.Context(), cfg, metrics, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "dataset URL (overrides DATASET_URL)")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout (overrides OUTPUT_PATH)`)
	return cmd
}

func run(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, stdout io.Writer) error {
	logger := observability.NewLogger(cfg)

	layout := render.LayoutFromConfig(cfg)
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	scale := domain.DefaultColorScale()
	client := dataset.NewClient(cfg.DatasetTimeout, cfg.DatasetMaxBytes, metrics, logger)
	p := pipeline.New(
		client,
		pipeline.NewTransformer(scale, metrics, logger),
		pipeline.NewRenderer(scale),
		cfg.DatasetURL,
		layout,
		logger,
		metrics,
	)

	res, runErr := p.Run(ctx)
	if runErr == nil {
		if err := writeResult(res, cfg.OutputPath, stdout); err != nil {
			metrics.RunFailures.WithLabelValues("write", domain.ErrorKind(err)).Inc()
			runErr = err
		} else {
			logger.Info("heat map written", "path", cfg.OutputPath, "run_id", res.RunID)
		}
	}

	// Failed runs still export their failure counters.
	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics export failed", "path", cfg.MetricsTextfile, "error", err)
		}
	}
	return runErr
}

func writeResult(res *pipeline.Result, path string, stdout io.Writer) error {
	if path == "-" {
		return res.Write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := res.Write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
