package render

import (
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/config"
)

// Margins are the canvas insets around the drawing area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Layout fixes the canvas geometry. All chart coordinates are relative to the
// inner drawing area.
type Layout struct {
	Width, Height float64
	Margins       Margins

	// LegendSwatch is the legend cell pitch. Twice this value is reserved at
	// the top of the drawing area for the legend.
	LegendSwatch float64
}

// DefaultLayout is an 800×400 canvas with room for the month labels on the left.
func DefaultLayout() Layout {
	return Layout{
		Width:        800,
		Height:       400,
		Margins:      Margins{Top: 20, Right: 20, Bottom: 20, Left: 60},
		LegendSwatch: 50,
	}
}

// LayoutFromConfig builds a Layout from the canvas settings.
func LayoutFromConfig(cfg *config.Config) Layout {
	l := DefaultLayout()
	l.Width = float64(cfg.CanvasWidth)
	l.Height = float64(cfg.CanvasHeight)
	l.Margins = Margins{
		Top:    float64(cfg.Margins.Top),
		Right:  float64(cfg.Margins.Right),
		Bottom: float64(cfg.Margins.Bottom),
		Left:   float64(cfg.Margins.Left),
	}
	return l
}

func (l Layout) InnerWidth() float64  { return l.Width - l.Margins.Left - l.Margins.Right }
func (l Layout) InnerHeight() float64 { return l.Height - l.Margins.Top - l.Margins.Bottom }

// LegendReserved is the vertical space above the month bands.
func (l Layout) LegendReserved() float64 { return 2 * l.LegendSwatch }

// Validate rejects layouts that leave no room for the grid.
func (l Layout) Validate() error {
	if l.InnerWidth() <= 0 || l.InnerHeight() <= 0 {
		return errors.New("layout margins leave no drawing area")
	}
	if l.LegendSwatch <= 0 {
		return errors.New("layout legend swatch must be positive")
	}
	if l.LegendReserved() >= l.InnerHeight() {
		return errors.New("layout legend leaves no room for month bands")
	}
	return nil
}

// Context carries everything a single render needs. It is built once per run
// and never shared between runs.
type Context struct {
	RunID       string
	GeneratedAt time.Time
	Layout      Layout
	Logger      *slog.Logger
}
