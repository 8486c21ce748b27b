package render

import "time"

// YearScale maps calendar years onto a continuous pixel range. Each year is
// positioned at January 1st, so leap years widen their column slightly, as a
// browser time scale would.
type YearScale struct {
	minYear, maxYear int
	d0, d1           float64 // unix seconds of Jan 1 of the domain bounds
	r0, r1           float64
}

// NewYearScale maps [minYear, maxYear] onto [r0, r1].
func NewYearScale(minYear, maxYear int, r0, r1 float64) YearScale {
	return YearScale{
		minYear: minYear,
		maxYear: maxYear,
		d0:      yearStart(minYear),
		d1:      yearStart(maxYear),
		r0:      r0,
		r1:      r1,
	}
}

// Position returns the pixel offset of year. A single-year domain maps to r0.
func (s YearScale) Position(year int) float64 {
	if s.d1 == s.d0 {
		return s.r0
	}
	return s.r0 + (yearStart(year)-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Ticks returns the years within the domain that are multiples of every.
func (s YearScale) Ticks(every int) []int {
	var ticks []int
	first := ((s.minYear + every - 1) / every) * every
	for y := first; y <= s.maxYear; y += every {
		ticks = append(ticks, y)
	}
	return ticks
}

func yearStart(year int) float64 {
	return float64(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
}

// BandScale maps a fixed ordered set of names onto equal bands of a pixel
// range, with no padding.
type BandScale struct {
	index  map[string]int
	domain []string
	r0     float64
	step   float64
}

// NewBandScale maps domain onto [r0, r1] in order.
func NewBandScale(domain []string, r0, r1 float64) BandScale {
	idx := make(map[string]int, len(domain))
	for i, d := range domain {
		idx[d] = i
	}
	var step float64
	if len(domain) > 0 {
		step = (r1 - r0) / float64(len(domain))
	}
	return BandScale{index: idx, domain: domain, r0: r0, step: step}
}

// Position returns the start of name's band.
func (s BandScale) Position(name string) (float64, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.r0 + float64(i)*s.step, true
}

// Bandwidth is the height of a single band.
func (s BandScale) Bandwidth() float64 { return s.step }

// Domain returns the band names in order.
func (s BandScale) Domain() []string { return s.domain }
