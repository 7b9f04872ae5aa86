package scoring

// Weights defines the relative importance of each scoring factor for a
// tenant. Stored weights are not required to sum to 1; Normalized is always
// applied before use.
type Weights struct {
	Formation    float64 `json:"formation"`
	Experience   float64 `json:"experience"`
	Skills       float64 `json:"skills"`
	Competencies float64 `json:"competencies"`
	Keyword      float64 `json:"keyword"`
}

// DefaultWeights returns the weight distribution applied when a tenant has no
// configuration, or when the configured weights are degenerate.
func DefaultWeights() Weights {
	return Weights{
		Formation:    0.20,
		Experience:   0.30,
		Skills:       0.25,
		Competencies: 0.15,
		Keyword:      0.10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Formation + w.Experience + w.Skills + w.Competencies + w.Keyword
}

// Normalized scales the weights into a distribution summing to 1. An all-zero
// weight set falls back to the defaults, which already sum to 1.
func (w Weights) Normalized() Weights {
	sum := w.Sum()
	if sum == 0 {
		return DefaultWeights()
	}
	return Weights{
		Formation:    w.Formation / sum,
		Experience:   w.Experience / sum,
		Skills:       w.Skills / sum,
		Competencies: w.Competencies / sum,
		Keyword:      w.Keyword / sum,
	}
}
