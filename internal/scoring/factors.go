package scoring

import "math"

// defaultReferenceYears is the experience level that earns a full score.
// It is a constant of the scoring model rather than tenant configuration;
// making it configurable per tenant would change persisted totals silently.
const defaultReferenceYears = 10.0

// normalizePercent maps a 0-100 percentage onto [0,1]. Absent, non-numeric,
// zero, and negative values all carry no signal and map to 0. Values above
// 100 are clamped, not rejected.
func normalizePercent(value *float64) float64 {
	if value == nil || math.IsNaN(*value) || *value <= 0 {
		return 0
	}
	return math.Min(*value, 100) / 100
}

// normalizeExperience maps years of experience onto [0,1], capped at
// referenceYears. Absent or non-positive years map to 0.
func normalizeExperience(years *float64, referenceYears float64) float64 {
	if years == nil || math.IsNaN(*years) || *years <= 0 {
		return 0
	}
	if referenceYears <= 0 {
		referenceYears = defaultReferenceYears
	}
	return math.Min(*years/referenceYears, 1)
}
