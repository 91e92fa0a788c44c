// Package advisor ranks the three option sets offered each round and picks
// the one with the highest weighted score. It is purely computational: same
// snapshot, same draft, same sets in, same recommendation out.
package advisor

import (
	"errors"
	"fmt"

	"github.com/liamqma/sanmou-yanwu/internal/draft"
	"github.com/liamqma/sanmou-yanwu/internal/scorer"
	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

var ErrWrongSetCount = errors.New("need exactly 3 option sets")
var ErrWrongSetSize = errors.New("option set size does not match round")
var ErrWrongRoundType = errors.New("round type does not match current round")
var ErrGameCompleted = errors.New("game already completed")

// SetCount is how many option sets the game offers every round.
const SetCount = 3

type Recommendation struct {
	RecommendedIndex int                `json:"recommended_set_index"`
	RecommendedSet   []string           `json:"recommended_set"`
	Sets             []scorer.Breakdown `json:"analysis"`
	Reasoning        string             `json:"reasoning"`
}

type Advisor struct {
	scorer *scorer.Scorer
}

func New(cfg scorer.Config, snap *stats.Snapshot) (*Advisor, error) {
	sc, err := scorer.New(cfg, snap)
	if err != nil {
		return nil, err
	}
	return &Advisor{scorer: sc}, nil
}

// Recommend validates and scores the three offered sets against the current
// draft and returns the full breakdown for all of them, recommending the
// first set with the maximal score.
func (a *Advisor) Recommend(view draft.View, roundType draft.RoundType, sets [][]string) (Recommendation, error) {
	if view.Complete {
		return Recommendation{}, ErrGameCompleted
	}
	want, _ := draft.TypeForRound(view.Round)
	if roundType != want {
		return Recommendation{}, fmt.Errorf("%w: round %d is a %s round", ErrWrongRoundType, view.Round, want)
	}
	if len(sets) != SetCount {
		return Recommendation{}, fmt.Errorf("%w, got %d", ErrWrongSetCount, len(sets))
	}
	size := draft.ItemsPerSet(view.Round)
	for i, set := range sets {
		if len(set) != size {
			return Recommendation{}, fmt.Errorf("%w: set %d has %d items, round %d takes %d",
				ErrWrongSetSize, i, len(set), view.Round, size)
		}
	}

	rec := Recommendation{Sets: make([]scorer.Breakdown, 0, SetCount)}
	best := 0
	for i, set := range sets {
		var b scorer.Breakdown
		if roundType == draft.RoundHero {
			b = a.scorer.ScoreHeroSet(i, set, view.Heroes, view.Skills)
		} else {
			b = a.scorer.ScoreSkillSet(i, set, view.Heroes, view.Skills)
		}
		rec.Sets = append(rec.Sets, b)
		if b.Total > rec.Sets[best].Total {
			best = i
		}
	}
	rec.RecommendedIndex = best
	rec.RecommendedSet = append([]string(nil), sets[best]...)
	rec.Reasoning = reasoning(roundType, rec.Sets[best])
	return rec, nil
}

// reasoning renders a short human-readable summary of why the winning set
// was chosen.
func reasoning(roundType draft.RoundType, b scorer.Breakdown) string {
	noun := "hero"
	if roundType == draft.RoundSkill {
		noun = "skill"
	}

	var best *scorer.MemberScore
	for i := range b.Members {
		m := &b.Members[i]
		if !m.Known {
			continue
		}
		if best == nil || m.Score > best.Score {
			best = m
		}
	}

	msg := ""
	if best != nil {
		msg = fmt.Sprintf("Recommended %s set contains %s with an adjusted win rate of %.1f%% over %d games. ",
			noun, best.Name, best.Score, best.Games)
	} else {
		msg = fmt.Sprintf("Recommended %s set has no recorded history yet. ", noun)
	}

	synergy := b.TeamCombo.Eligible + b.PairSynergy.Eligible + b.IntraSynergy.Eligible + b.CrossSynergy.Eligible
	if synergy > 0 {
		msg += fmt.Sprintf("Synergy evidence from %d observed pairings backs the pick. ", synergy)
	}
	msg += fmt.Sprintf("Total score: %.1f", b.Total)
	return msg
}
