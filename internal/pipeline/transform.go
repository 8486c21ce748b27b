package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"golang.org/x/net/html"
)

// HeatmapTransformer implements Transformer using domain.Transform with a
// fixed color scale.
type HeatmapTransformer struct {
	scale   domain.ColorScale
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates a HeatmapTransformer. The same scale must be given
// to the renderer so bucket indexes resolve to the right colors.
func NewTransformer(scale domain.ColorScale, metrics *observability.Metrics, logger *slog.Logger) *HeatmapTransformer {
	return &HeatmapTransformer{
		scale:   scale,
		metrics: metrics,
		logger:  logger,
	}
}

func (t *HeatmapTransformer) Transform(_ context.Context, ds domain.Dataset) (domain.Transformed, error) {
	out, err := domain.Transform(ds, t.scale)
	if err != nil {
		return domain.Transformed{}, err
	}

	t.metrics.RecordsTransformed.Add(float64(len(out.Records)))
	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		counts := make([]int, t.scale.Len())
		for _, rec := range out.Records {
			counts[rec.ColorBucket]++
		}
		t.logger.Debug("records bucketed", "records", len(out.Records), "bucket_counts", counts)
	}
	return out, nil
}

// ChartRenderer implements Renderer with render.Render.
type ChartRenderer struct {
	scale domain.ColorScale
}

// NewRenderer creates a ChartRenderer for scale.
func NewRenderer(scale domain.ColorScale) *ChartRenderer {
	return &ChartRenderer{scale: scale}
}

func (r *ChartRenderer) Render(rc render.Context, t domain.Transformed, container *html.Node) (*render.Chart, error) {
	return render.Render(rc, t, r.scale, container)
}
