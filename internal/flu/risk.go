package flu

import "math"

// Coefficients is a logistic regression over per-category visit counts.
type Coefficients struct {
	Baseline float64                // β0, log-odds with no visits
	Weights  [categoryCount]float64 // β1..β4 in category order
}

// DefaultCoefficients are the fixed campus weights. Dorms carry the highest
// risk, outdoors the lowest.
var DefaultCoefficients = Coefficients{
	Baseline: -5,
	Weights: [categoryCount]float64{
		CategoryDorm:    0.5,
		CategoryClass:   0.3,
		CategoryDining:  0.4,
		CategoryOutside: 0.1,
	},
}

// LogOdds returns β0 + Σ βi·count_i.
func (c Coefficients) LogOdds(counts Counts) float64 {
	x := c.Baseline
	for i, w := range c.Weights {
		x += w * float64(counts[i])
	}
	return x
}

// Probability maps the log-odds of counts through the logistic function.
func (c Coefficients) Probability(counts Counts) float64 {
	return Logistic(c.LogOdds(counts))
}

// Logistic returns 1/(1+e^-x).
func Logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ComputeP is the risk probability for counts under DefaultCoefficients.
func ComputeP(counts Counts) float64 {
	return DefaultCoefficients.Probability(counts)
}

// ZeroP is the probability with no visits recorded, sigmoid(-5).
func ZeroP() float64 {
	return ComputeP(Counts{})
}

// PerClickProbability spreads a window probability p over k independent
// clicks: 1 - (1-p)^(1/k). It is 0 when k <= 0.
func PerClickProbability(p float64, k int) float64 {
	if k <= 0 {
		return 0
	}
	return 1 - math.Pow(1-p, 1/float64(k))
}
