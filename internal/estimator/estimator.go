// Package estimator turns raw win/loss counts into confidence-adjusted win
// rates. Two estimators are provided: a Wilson lower confidence bound, which
// penalizes small samples hard, and empirical-Bayes shrinkage toward a global
// prior. The scorer only ever sees the resulting scalar, so the two swap
// freely per metric.
package estimator

import (
	"math"

	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

const (
	// DefaultZ is the z-value for a 95% confidence interval.
	DefaultZ = 1.96

	// DefaultPriorWeight is the pseudo-count the shrinkage estimator blends
	// toward its prior.
	DefaultPriorWeight = 10.0
)

// Estimator converts a win/loss count into a rate in [0,1].
type Estimator interface {
	Estimate(wins, losses uint64) float64
}

// WilsonLowerBound returns the lower bound of the Wilson score interval for
// a Bernoulli proportion. Result is in [0,1], never exceeds wins/total, and
// is 0 when total is 0.
func WilsonLowerBound(wins, total uint64, z float64) float64 {
	if total == 0 {
		return 0
	}
	n := float64(total)
	phat := float64(wins) / n
	denom := 1 + z*z/n
	center := phat + z*z/(2*n)
	margin := z * math.Sqrt((phat*(1-phat)+z*z/(4*n))/n)
	return math.Max(0, (center-margin)/denom)
}

// Wilson is the lower-confidence-bound estimator.
type Wilson struct {
	Z float64
}

func NewWilson(z float64) Wilson {
	if z <= 0 {
		z = DefaultZ
	}
	return Wilson{Z: z}
}

func (w Wilson) Estimate(wins, losses uint64) float64 {
	return WilsonLowerBound(wins, wins+losses, w.Z)
}

// Shrinker blends the observed rate toward a prior rate, weighted by the
// observed sample size against Weight pseudo-games. With no observations it
// returns the prior itself.
type Shrinker struct {
	Prior  float64
	Weight float64
}

func NewShrinker(prior, weight float64) Shrinker {
	if weight <= 0 {
		weight = DefaultPriorWeight
	}
	return Shrinker{Prior: prior, Weight: weight}
}

func (s Shrinker) Estimate(wins, losses uint64) float64 {
	total := wins + losses
	if total == 0 {
		return s.Prior
	}
	n := float64(total)
	observed := float64(wins) / n
	return (s.Weight*s.Prior + n*observed) / (s.Weight + n)
}

// Prior computes the global win rate across an entire statistics map,
// falling back to 0.5 when the map holds no observed games at all.
func Prior[K comparable](m map[K]stats.PairCount) float64 {
	var wins, total uint64
	for _, pc := range m {
		wins += pc.Wins
		total += pc.Total()
	}
	if total == 0 {
		return 0.5
	}
	return float64(wins) / float64(total)
}
