package domain

// ClassifyStage maps a stage reading onto a flood category, highest band
// first. Pure and total over real-number input. A malformed (non-monotonic)
// threshold set yields CategoryNone for every stage.
func ClassifyStage(stage float64, t Thresholds) FloodCategory {
	if !t.Valid() {
		return CategoryNone
	}
	switch {
	case stage >= t.Major:
		return CategoryMajor
	case stage >= t.Moderate:
		return CategoryModerate
	case stage >= t.Flood:
		return CategoryMinor
	case stage >= t.Action:
		return CategoryAction
	default:
		return CategoryNone
	}
}

// ClassifySeries stamps each point's category in place and returns the
// series. Observed history and forecast series go through this same function;
// there is deliberately no forecast-specific variant.
func ClassifySeries(points []ObservationPoint, t Thresholds) []ObservationPoint {
	for i := range points {
		points[i].Category = ClassifyStage(points[i].Stage, t)
	}
	return points
}
