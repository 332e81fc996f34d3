package report

// DefaultParameters lists the soil parameters rendered on the standard report.
// Only pH ships today; additional parameters slot in without touching the
// transform or the exporter.
var DefaultParameters = []ParameterSpec{
	{Name: "pH", Min: 3, Max: 11, LowCutoff: 6.5, HighCutoff: 7.5},
}

// ComputeDisplayMetric maps a raw parameter reading onto the gauge model for
// its spec. MarkerPercent is deliberately unclamped: values outside [Min, Max]
// land outside [0, 100] so the gauge shows the overflow. NaN readings rate as
// Optimum because both cutoff comparisons are false.
func ComputeDisplayMetric(value float64, spec ParameterSpec) DisplayMetric {
	span := spec.Max - spec.Min

	metric := DisplayMetric{
		Value:         value,
		Rating:        RatingOptimum,
		Cut1Percent:   (spec.LowCutoff - spec.Min) / span * 100,
		Cut2Percent:   (spec.HighCutoff - spec.Min) / span * 100,
		MarkerPercent: (value - spec.Min) / span * 100,
	}

	switch {
	case value < spec.LowCutoff:
		metric.Rating = RatingLow
	case value > spec.HighCutoff:
		metric.Rating = RatingHigh
	}
	return metric
}

// BuildTemplateData computes one DisplayMetric for each listed parameter the
// record carries. Parameters without a reading are left out of the map.
func BuildTemplateData(record TestRecord, specs []ParameterSpec) TemplateData {
	data := make(TemplateData, len(specs))
	for _, spec := range specs {
		value, ok := record.Values[spec.Name]
		if !ok {
			continue
		}
		data[spec.Name] = ComputeDisplayMetric(value, spec)
	}
	return data
}
