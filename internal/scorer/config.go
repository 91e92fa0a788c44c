package scorer

import (
	"errors"
	"fmt"

	"github.com/liamqma/sanmou-yanwu/internal/estimator"
)

var ErrUnknownEstimator = errors.New("unknown estimator")
var ErrNegativeWeight = errors.New("sub-score weights cannot be negative")

// Recognized estimator names.
const (
	EstimatorWilson = "wilson"
	EstimatorBayes  = "bayes"
)

// DefaultMinGames is the sample floor below which a pair or combination is
// treated as insufficient evidence and left out of its sub-score average.
const DefaultMinGames = 2

// HeroWeights weight the sub-scores of a hero round. They need not sum to
// 1; the scorer normalizes them, and falls back to equal weighting when all
// are zero.
type HeroWeights struct {
	Individual   float64 `json:"individual"`
	TeamCombo    float64 `json:"team_combo"`
	PairSynergy  float64 `json:"pair_synergy"`
	CrossSynergy float64 `json:"cross_synergy"`
}

// SkillWeights weight the sub-scores of a skill round.
type SkillWeights struct {
	Individual     float64 `json:"individual"`
	CurrentSynergy float64 `json:"current_synergy"`
	IntraSynergy   float64 `json:"intra_synergy"`
	CrossSynergy   float64 `json:"cross_synergy"`
}

// Config is the injected scoring configuration. Estimator choice and weight
// sets vary per deployment, so they live here rather than in constants.
type Config struct {
	Estimator   string  `json:"estimator"`
	Z           float64 `json:"z"`
	PriorWeight float64 `json:"prior_weight"`
	MinGames    uint64  `json:"min_games"`

	HeroWeights  HeroWeights  `json:"hero_weights"`
	SkillWeights SkillWeights `json:"skill_weights"`
}

func DefaultConfig() Config {
	return Config{
		Estimator:   EstimatorWilson,
		Z:           estimator.DefaultZ,
		PriorWeight: estimator.DefaultPriorWeight,
		MinGames:    DefaultMinGames,
		HeroWeights: HeroWeights{
			Individual:   0.40,
			TeamCombo:    0.20,
			PairSynergy:  0.25,
			CrossSynergy: 0.15,
		},
		SkillWeights: SkillWeights{
			Individual:     0.40,
			CurrentSynergy: 0.25,
			IntraSynergy:   0.20,
			CrossSynergy:   0.15,
		},
	}
}

func (c Config) Validate() error {
	switch c.Estimator {
	case EstimatorWilson, EstimatorBayes:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEstimator, c.Estimator)
	}
	for _, w := range []float64{
		c.HeroWeights.Individual, c.HeroWeights.TeamCombo,
		c.HeroWeights.PairSynergy, c.HeroWeights.CrossSynergy,
		c.SkillWeights.Individual, c.SkillWeights.CurrentSynergy,
		c.SkillWeights.IntraSynergy, c.SkillWeights.CrossSynergy,
	} {
		if w < 0 {
			return ErrNegativeWeight
		}
	}
	return nil
}

// normalize scales weights to sum to 1, or spreads them equally when the
// configured weights sum to 0.
func normalize(weights []float64) []float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	if sum == 0 {
		for i := range out {
			out[i] = 1 / float64(len(weights))
		}
		return out
	}
	for i, w := range weights {
		out[i] = w / sum
	}
	return out
}
