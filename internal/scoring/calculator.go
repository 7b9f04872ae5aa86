package scoring

import "math"

// Breakdown holds the per-factor contributions to a total score, each
// rounded to 2 decimal places.
type Breakdown struct {
	Formation    float64 `json:"formation"`
	Experience   float64 `json:"experience"`
	Skills       float64 `json:"skills"`
	Competencies float64 `json:"competencies"`
	Keyword      float64 `json:"keyword"`
}

// Score is the result of one computation: a total in [0,100] plus the
// contribution of each factor.
type Score struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// Compute combines a candidate profile with tenant weights into a score.
// The weights are normalized to sum to 1 and each factor is normalized onto
// [0,1], so the total is a convex combination scaled to 100 and always stays
// within [0,100]. The function is pure: identical inputs produce identical
// output.
func Compute(profile Profile, weights Weights) Score {
	w := weights.Normalized()

	breakdown := Breakdown{
		Formation:    contribution(normalizePercent(profile.Formation), w.Formation),
		Experience:   contribution(normalizeExperience(profile.ExperienceYears, defaultReferenceYears), w.Experience),
		Skills:       contribution(normalizePercent(profile.SkillsMatch), w.Skills),
		Competencies: contribution(normalizePercent(profile.CompetenciesMatch), w.Competencies),
		Keyword:      contribution(normalizePercent(profile.KeywordMatch), w.Keyword),
	}

	total := round2(breakdown.Formation + breakdown.Experience + breakdown.Skills + breakdown.Competencies + breakdown.Keyword)
	return Score{Total: total, Breakdown: breakdown}
}

func contribution(normalizedFactor, normalizedWeight float64) float64 {
	return round2(normalizedFactor * normalizedWeight * 100)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
