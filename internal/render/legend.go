package render

import (
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"golang.org/x/net/html"
)

// drawLegend lays the swatches out right to left, hottest at the right edge
// of the drawing area, each labeled with its threshold.
func drawLegend(svg *html.Node, l Layout, scale domain.ColorScale) *html.Node {
	swatchW := l.LegendSwatch - 10
	swatchH := l.LegendSwatch - 25

	g := appendEl(svg, "g",
		"id", "legend",
		"transform", translate(l.Width-l.Margins.Right-swatchW, l.Margins.Top),
	)

	for i, stop := range scale.Stops() {
		x := float64(-i) * l.LegendSwatch
		appendEl(g, "rect",
			"class", "legend-swatch",
			"data-bucket", strconv.Itoa(i),
			"data-threshold", strconv.FormatFloat(stop.Threshold, 'f', -1, 64),
			"x", num(x),
			"y", "0",
			"width", num(swatchW),
			"height", num(swatchH),
			"fill", stop.Hex(),
		)
		label := appendEl(g, "text",
			"x", num(x+7),
			"y", num(l.LegendSwatch-10),
			"style", "font-size: 0.7rem",
		)
		appendText(label, LegendLabel(stop.Threshold))
	}
	return g
}

// LegendLabel formats a threshold as shown under its swatch, e.g. "12.8°C".
func LegendLabel(threshold float64) string {
	return strconv.FormatFloat(threshold, 'f', 1, 64) + "°C"
}
