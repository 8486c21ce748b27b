package domain

// Transform validates every raw record, computes its absolute temperature and
// color bucket, and derives the year extent. It does not modify ds.
func Transform(ds Dataset, scale ColorScale) (Transformed, error) {
	if len(ds.Records) == 0 {
		return Transformed{}, &FormatError{Reason: "monthlyVariance is empty"}
	}
	if err := scale.Validate(); err != nil {
		return Transformed{}, err
	}

	out := Transformed{
		BaseTemperature: ds.BaseTemperature,
		Records:         make([]Record, 0, len(ds.Records)),
		Months:          MonthNames,
		MinYear:         ds.Records[0].Year,
		MaxYear:         ds.Records[0].Year,
	}

	for i, raw := range ds.Records {
		rec, err := transformRecord(i, raw, ds.BaseTemperature, scale)
		if err != nil {
			return Transformed{}, err
		}
		out.MinYear = min(out.MinYear, rec.Year)
		out.MaxYear = max(out.MaxYear, rec.Year)
		out.Records = append(out.Records, rec)
	}

	return out, nil
}

func transformRecord(index int, raw RawRecord, base float64, scale ColorScale) (Record, error) {
	if raw.Month < 1 || raw.Month > 12 {
		return Record{}, &RangeError{Field: "month", Value: raw.Month, Index: index}
	}
	// The year axis is a calendar time scale; there is no year zero.
	if raw.Year < 1 {
		return Record{}, &RangeError{Field: "year", Value: raw.Year, Index: index}
	}

	abs := base + raw.Variance
	return Record{
		Year:         raw.Year,
		Month:        raw.Month,
		Variance:     raw.Variance,
		AbsoluteTemp: abs,
		ColorBucket:  scale.Bucket(abs),
	}, nil
}
