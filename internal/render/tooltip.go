package render

import (
	_ "embed"
	"math"
	"strconv"

	"golang.org/x/net/html"
)

// hoverScript is the browser counterpart of Tooltip.Enter and Tooltip.Leave.
//
//go:embed tooltip.js
var hoverScript string

// Tooltip offsets from the pointer, in pixels.
const (
	tooltipOffsetX = 10
	tooltipOffsetY = -28
)

// Point is a pointer position relative to the chart container.
type Point struct {
	X, Y float64
}

// Tooltip is the single hover panel of a chart. It is created once and only
// its attributes change; leaving a cell hides it rather than removing it.
type Tooltip struct {
	node    *html.Node
	opacity int
	left    float64
	top     float64
}

func newTooltip(container *html.Node) *Tooltip {
	t := &Tooltip{node: appendEl(container, "div", "id", "tooltip")}
	appendText(t.node, "")
	t.applyStyle()
	return t
}

// Enter shows the tooltip for cell next to the pointer at p.
func (t *Tooltip) Enter(cell *Cell, p Point) {
	rec := cell.Record
	setAttr(t.node, "data-year", strconv.Itoa(rec.Year))
	setText(t.node, TooltipText(rec.Year, rec.MonthName(), rec.AbsoluteTemp))
	t.opacity = 1
	t.left = p.X + tooltipOffsetX
	t.top = p.Y + tooltipOffsetY
	t.applyStyle()
}

// Leave hides the tooltip. Its content and position are kept.
func (t *Tooltip) Leave() {
	t.opacity = 0
	t.applyStyle()
}

// Visible reports whether the tooltip is currently shown.
func (t *Tooltip) Visible() bool { return t.opacity == 1 }

// Node returns the tooltip element.
func (t *Tooltip) Node() *html.Node { return t.node }

func (t *Tooltip) applyStyle() {
	setAttr(t.node, "style",
		"opacity: "+strconv.Itoa(t.opacity)+"; left: "+num(t.left)+"px; top: "+num(t.top)+"px;")
}

// TooltipText is the tooltip body for one cell. Degrees are rounded to three
// decimals, halves away from zero, the same as toFixed(3) in tooltip.js.
func TooltipText(year int, month string, temp float64) string {
	return "Year: " + strconv.Itoa(year) +
		"\nMonth: " + month +
		"\nDegrees: " + fixed3(temp)
}

// fixed3 formats v with three decimals. strconv rounds exact halves to even;
// an exact half is only possible when v is a multiple of 1/16, and then
// v*1000 is exact, so math.Round can take over.
func fixed3(v float64) string {
	if sixteenths := v * 16; sixteenths == math.Trunc(sixteenths) {
		scaled := v * 1000
		if math.Abs(scaled-math.Trunc(scaled)) == 0.5 {
			return strconv.FormatFloat(math.Round(scaled)/1000, 'f', 3, 64)
		}
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
