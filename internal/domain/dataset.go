package domain

// RawRecord is one monthlyVariance entry as published by the dataset.
type RawRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Variance float64 `json:"variance"`
}

// Dataset is the decoded payload. It is not modified after loading.
type Dataset struct {
	BaseTemperature float64
	Records         []RawRecord
}

// Record is a RawRecord after transformation.
type Record struct {
	Year         int
	Month        int // 1-12
	Variance     float64
	AbsoluteTemp float64
	ColorBucket  int
}

// MonthName returns the full English name of the record's month.
func (r Record) MonthName() string {
	return MonthNames[r.Month-1]
}

// MonthIndex returns the zero-based month, 0 = January.
func (r Record) MonthIndex() int {
	return r.Month - 1
}

// Transformed is the renderer's input: the transformed records plus the
// scalars needed to lay them out.
type Transformed struct {
	BaseTemperature float64
	Records         []Record
	MinYear         int
	MaxYear         int
	Months          []string
}

// MonthNames is the fixed vertical axis, in calendar order.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
