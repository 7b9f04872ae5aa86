package scoring

import "encoding/json"

// Profile carries the five raw evaluation signals for one candidate. A nil
// field means the signal is absent from the stored profile.
type Profile struct {
	Formation         *float64
	ExperienceYears   *float64
	SkillsMatch       *float64
	CompetenciesMatch *float64
	KeywordMatch      *float64
}

// Candidate profiles are free-form JSON and some predate the current field
// names, so each factor is read through an ordered list of fallback keys.
// Keeping the whole mapping here isolates that compatibility concern.
var profileFieldKeys = map[string][]string{
	"formation":    {"formationScore", "formacion"},
	"experience":   {"experienceYears", "aniosExperiencia"},
	"skills":       {"skillsMatch", "habilidades"},
	"competencies": {"competenciesMatch", "competencias"},
	"keyword":      {"keywordMatch", "palabrasClave"},
}

// ProfileFromJSON extracts the factor fields from a raw candidate profile
// blob. Unknown fields are ignored; non-numeric values are treated as absent.
func ProfileFromJSON(raw json.RawMessage) Profile {
	var blob map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &blob) != nil {
		return Profile{}
	}
	return Profile{
		Formation:         pickNumber(blob, profileFieldKeys["formation"]),
		ExperienceYears:   pickNumber(blob, profileFieldKeys["experience"]),
		SkillsMatch:       pickNumber(blob, profileFieldKeys["skills"]),
		CompetenciesMatch: pickNumber(blob, profileFieldKeys["competencies"]),
		KeywordMatch:      pickNumber(blob, profileFieldKeys["keyword"]),
	}
}

func pickNumber(blob map[string]any, keys []string) *float64 {
	for _, key := range keys {
		val, ok := blob[key]
		if !ok {
			continue
		}
		if num, ok := val.(float64); ok {
			return &num
		}
	}
	return nil
}
