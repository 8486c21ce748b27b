// Package render draws the temperature heat map into an HTML element tree.
//
// The chart is plain inline SVG: one rect per record inside a group offset by
// the layout margins, a year axis, a month axis, and a legend. Each cell
// carries data-month (zero-based), data-year and data-temp attributes so that
// automated checks can query cells without parsing colors or geometry.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"golang.org/x/net/html"
)

const (
	chartTitle       = "Visualizing Data with Heat Map"
	chartDescription = "Monthly Global Land-Surface Temperature"
)

// Cell is one painted rectangle and the record it represents.
type Cell struct {
	Node   *html.Node
	Record domain.Record
}

// Chart is the result of a render: handles to the painted elements.
type Chart struct {
	Container *html.Node
	SVG       *html.Node
	Cells     []*Cell
	Legend    *html.Node
	Tooltip   *Tooltip
}

// CellAt returns the cell for year and month (1-12).
func (c *Chart) CellAt(year, month int) (*Cell, bool) {
	for _, cell := range c.Cells {
		if cell.Record.Year == year && cell.Record.Month == month {
			return cell, true
		}
	}
	return nil, false
}

// Render paints t into container. Nothing is appended to container when an
// error is returned.
func Render(rc Context, t domain.Transformed, scale domain.ColorScale, container *html.Node) (*Chart, error) {
	if container == nil {
		return nil, errors.New("render: nil container")
	}
	l := rc.Layout
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if len(t.Records) == 0 {
		return nil, errors.New("render: no records")
	}
	if len(t.Months) == 0 {
		return nil, errors.New("render: empty month axis")
	}

	innerW, innerH := l.InnerWidth(), l.InnerHeight()
	years := NewYearScale(t.MinYear, t.MaxYear, 0, innerW)
	months := NewBandScale(t.Months, l.LegendReserved(), innerH)

	cellW := innerW
	if span := t.MaxYear - t.MinYear; span > 0 {
		cellW = innerW / float64(span)
	}
	cellH := (innerH - l.LegendReserved()) / float64(len(t.Months))

	// Build detached, attach at the end.
	heading := el("h1", "id", "title")
	appendText(heading, chartTitle)
	appendText(appendEl(heading, "h6", "id", "description"), chartDescription)

	svg := el("svg",
		"viewBox", "0 0 "+num(l.Width)+" "+num(l.Height),
		"xmlns", "http://www.w3.org/2000/svg",
	)
	if rc.RunID != "" {
		setAttr(svg, "data-run-id", rc.RunID)
	}
	canvas := appendEl(svg, "g", "transform", translate(l.Margins.Left, l.Margins.Top))
	legend := drawLegend(svg, l, scale)
	drawYearAxis(canvas, years, innerW, innerH)
	drawMonthAxis(canvas, months)

	chart := &Chart{
		Container: container,
		SVG:       svg,
		Legend:    legend,
		Cells:     make([]*Cell, 0, len(t.Records)),
	}

	for _, rec := range t.Records {
		if rec.Month < 1 || rec.Month > len(domain.MonthNames) {
			return nil, &domain.RangeError{Field: "month", Value: rec.Month}
		}
		y, ok := months.Position(rec.MonthName())
		if !ok {
			return nil, fmt.Errorf("render: month %q not on axis", rec.MonthName())
		}
		if rec.ColorBucket < 0 || rec.ColorBucket >= scale.Len() {
			return nil, fmt.Errorf("render: bucket %d outside color scale", rec.ColorBucket)
		}
		node := appendEl(canvas, "rect",
			"class", "cell",
			"data-month", strconv.Itoa(rec.MonthIndex()),
			"data-year", strconv.Itoa(rec.Year),
			"data-temp", strconv.FormatFloat(rec.AbsoluteTemp, 'f', -1, 64),
			"data-bucket", strconv.Itoa(rec.ColorBucket),
			"x", num(years.Position(rec.Year)),
			"y", num(y),
			"width", num(cellW),
			"height", num(cellH),
			"fill", scale.Color(rec.ColorBucket),
		)
		chart.Cells = append(chart.Cells, &Cell{Node: node, Record: rec})
	}

	container.AppendChild(heading)
	container.AppendChild(svg)
	chart.Tooltip = newTooltip(container)
	script := appendEl(container, "script")
	appendText(script, hoverScript)

	if rc.Logger != nil {
		rc.Logger.Debug("chart rendered",
			"cells", len(chart.Cells),
			"min_year", t.MinYear,
			"max_year", t.MaxYear,
			"cell_width", cellW,
			"cell_height", cellH,
		)
	}
	return chart, nil
}
