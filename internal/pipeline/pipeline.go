package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/net/html"
)

// Loader fetches the raw dataset.
type Loader interface {
	Load(ctx context.Context, url string) (domain.Dataset, error)
}

// Transformer turns the raw dataset into renderable records.
type Transformer interface {
	Transform(ctx context.Context, ds domain.Dataset) (domain.Transformed, error)
}

// Renderer paints transformed records into a container element.
type Renderer interface {
	Render(rc render.Context, t domain.Transformed, container *html.Node) (*render.Chart, error)
}

// Context is the state of one run. It replaces any shared scale or DOM
// handle: each Run builds its own and drops it when done.
type Context struct {
	RunID  string
	Logger *slog.Logger
	Clock  clockwork.Clock
	Layout render.Layout
}

// Render returns the subset of the run context the renderer needs.
func (c *Context) Render() render.Context {
	return render.Context{
		RunID:       c.RunID,
		GeneratedAt: c.Clock.Now(),
		Layout:      c.Layout,
		Logger:      c.Logger,
	}
}

// Result is a successfully rendered document.
type Result struct {
	RunID    string
	Document *html.Node
	Chart    *render.Chart
}

// Write serializes the rendered document.
func (r *Result) Write(w io.Writer) error {
	return render.WriteDocument(w, r.Document)
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithClock sets the time source used to stamp documents.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// WithRunIDs sets the run ID generator.
func WithRunIDs(next func() string) Option {
	return func(p *Pipeline) { p.newRunID = next }
}

// Pipeline runs load → transform → render once per Run call.
type Pipeline struct {
	loader      Loader
	transformer Transformer
	renderer    Renderer
	url         string
	layout      render.Layout
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
	newRunID    func() string
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, t Transformer, r Renderer, url string, layout render.Layout, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Pipeline {
	p := &Pipeline{
		loader:      l,
		transformer: t,
		renderer:    r,
		url:         url,
		layout:      layout,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
		newRunID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one pipeline pass. Any stage failure aborts the run before
// anything is drawn; the returned error wraps a domain.TransferError,
// domain.FormatError or domain.RangeError where applicable.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	rc := p.newContext()
	start := rc.Clock.Now()
	rc.Logger.Info("run started", "url", p.url)

	ds, err := p.loader.Load(ctx, p.url)
	if err != nil {
		return nil, p.fail(rc, "load", err)
	}
	rc.Logger.Info("dataset loaded", "records", len(ds.Records), "base_temperature", ds.BaseTemperature)

	out, err := p.transformer.Transform(ctx, ds)
	if err != nil {
		return nil, p.fail(rc, "transform", err)
	}

	renderCtx := rc.Render()
	doc, container := render.NewDocument(renderCtx)
	chart, err := p.renderer.Render(renderCtx, out, container)
	if err != nil {
		return nil, p.fail(rc, "render", err)
	}

	p.metrics.CellsRendered.Add(float64(len(chart.Cells)))
	for _, cell := range chart.Cells {
		p.metrics.CellsByBucket.WithLabelValues(strconv.Itoa(cell.Record.ColorBucket)).Inc()
	}
	p.metrics.LastSuccess.Set(float64(rc.Clock.Now().Unix()))
	p.metrics.RunDuration.Observe(rc.Clock.Since(start).Seconds())

	rc.Logger.Info("run complete",
		"cells", len(chart.Cells),
		"min_year", out.MinYear,
		"max_year", out.MaxYear,
	)
	return &Result{RunID: rc.RunID, Document: doc, Chart: chart}, nil
}

func (p *Pipeline) newContext() *Context {
	id := p.newRunID()
	return &Context{
		RunID:  id,
		Logger: p.logger.With("run_id", id),
		Clock:  p.clock,
		Layout: p.layout,
	}
}

func (p *Pipeline) fail(rc *Context, stage string, err error) error {
	kind := domain.ErrorKind(err)
	p.metrics.RunFailures.WithLabelValues(stage, kind).Inc()
	rc.Logger.Error("run failed", "stage", stage, "kind", kind, "error", err)
	return fmt.Errorf("%s: %w", stage, err)
}
