package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorStop pairs a threshold temperature (°C) with its swatch color.
type ColorStop struct {
	Threshold float64
	Color     colorful.Color
}

// Hex returns the stop color as upper-case "#RRGGBB".
func (s ColorStop) Hex() string {
	return strings.ToUpper(s.Color.Hex())
}

// ColorScale is an ordered threshold table, strictly descending by threshold.
// The last stop is the catch-all for values at or below every threshold.
type ColorScale struct {
	stops []ColorStop
}

// defaultStops is the heat map palette, hottest first.
var defaultStops = []struct {
	threshold float64
	hex       string
}{
	{12.8, "#FF0030"},
	{11.1, "#FD5405"},
	{9.4, "#FCCF05"},
	{7.9, "#E6FD06"},
	{6.1, "#03FE26"},
	{4.7, "#06DBD6"},
	{2.8, "#051CFD"},
}

// DefaultColorScale returns the seven-entry palette used by the heat map.
func DefaultColorScale() ColorScale {
	stops := make([]ColorStop, len(defaultStops))
	for i, d := range defaultStops {
		c, err := colorful.Hex(d.hex)
		if err != nil {
			panic(fmt.Sprintf("default color %q: %v", d.hex, err))
		}
		stops[i] = ColorStop{Threshold: d.threshold, Color: c}
	}
	return ColorScale{stops: stops}
}

// NewColorScale builds a scale from stops, rejecting tables that are empty
// or not strictly descending.
func NewColorScale(stops []ColorStop) (ColorScale, error) {
	s := ColorScale{stops: append([]ColorStop(nil), stops...)}
	if err := s.Validate(); err != nil {
		return ColorScale{}, err
	}
	return s, nil
}

// Validate checks the table invariants.
func (s ColorScale) Validate() error {
	if len(s.stops) == 0 {
		return errors.New("color scale has no stops")
	}
	for i := 1; i < len(s.stops); i++ {
		if s.stops[i].Threshold >= s.stops[i-1].Threshold {
			return fmt.Errorf("color scale thresholds not strictly descending at %d: %g >= %g",
				i, s.stops[i].Threshold, s.stops[i-1].Threshold)
		}
	}
	return nil
}

// Len returns the number of buckets.
func (s ColorScale) Len() int { return len(s.stops) }

// Stops returns a copy of the table.
func (s ColorScale) Stops() []ColorStop {
	return append([]ColorStop(nil), s.stops...)
}

// Bucket returns the index of the first threshold that temp strictly exceeds,
// or the last index when none is exceeded.
func (s ColorScale) Bucket(temp float64) int {
	for i, stop := range s.stops {
		if temp > stop.Threshold {
			return i
		}
	}
	return len(s.stops) - 1
}

// Color returns the hex color of bucket.
func (s ColorScale) Color(bucket int) string {
	return s.stops[bucket].Hex()
}
