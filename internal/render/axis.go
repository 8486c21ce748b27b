package render

import (
	"strconv"

	"golang.org/x/net/html"
)

const (
	tickSize    = 6
	tickPadding = 3
	yearTicks   = 10
)

// drawYearAxis adds the bottom axis with a tick every decade and no outer ticks.
func drawYearAxis(parent *html.Node, scale YearScale, innerWidth, innerHeight float64) *html.Node {
	g := appendEl(parent, "g",
		"id", "x-axis",
		"transform", translate(0, innerHeight),
		"fill", "none",
		"font-size", "10",
		"font-family", "sans-serif",
		"text-anchor", "middle",
	)
	appendEl(g, "path", "class", "domain", "stroke", "currentColor", "d", "M0,0H"+num(innerWidth))

	for _, year := range scale.Ticks(yearTicks) {
		tick := appendEl(g, "g", "class", "tick", "opacity", "1", "transform", translate(scale.Position(year), 0))
		appendEl(tick, "line", "stroke", "currentColor", "y2", strconv.Itoa(tickSize))
		label := appendEl(tick, "text", "fill", "currentColor", "y", strconv.Itoa(tickSize+tickPadding), "dy", "0.71em")
		appendText(label, strconv.Itoa(year))
	}
	return g
}

// drawMonthAxis adds the left axis with one label per band, centered on it.
func drawMonthAxis(parent *html.Node, scale BandScale) *html.Node {
	g := appendEl(parent, "g",
		"id", "y-axis",
		"fill", "none",
		"font-size", "10",
		"font-family", "sans-serif",
		"text-anchor", "end",
	)

	domain := scale.Domain()
	top, _ := scale.Position(domain[0])
	bottom := top + scale.Bandwidth()*float64(len(domain))
	appendEl(g, "path", "class", "domain", "stroke", "currentColor", "d", "M0,"+num(top)+"V"+num(bottom))

	for _, name := range domain {
		y, _ := scale.Position(name)
		tick := appendEl(g, "g", "class", "tick", "opacity", "1", "transform", translate(0, y+scale.Bandwidth()/2))
		appendEl(tick, "line", "stroke", "currentColor", "x2", strconv.Itoa(-tickSize))
		label := appendEl(tick, "text", "fill", "currentColor", "x", strconv.Itoa(-(tickSize + tickPadding)), "dy", "0.32em")
		appendText(label, name)
	}
	return g
}
