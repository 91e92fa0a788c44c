// Package scorer computes the ranking score of one candidate option set
// against the current draft and the aggregate statistics snapshot. Every
// sub-score is an average over the pairs and combinations that actually have
// enough observed games, so sets are compared fairly no matter how much of
// their history happens to be recorded.
package scorer

import (
	"strings"

	"github.com/liamqma/sanmou-yanwu/internal/estimator"
	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

// Sample is one pair/combination that fed a sub-score, kept for audit.
type Sample struct {
	Key      string  `json:"key"`
	Wins     uint64  `json:"wins"`
	Losses   uint64  `json:"losses"`
	Estimate float64 `json:"estimate"`
	Eligible bool    `json:"eligible"`
}

// SubScore is one named component of a set's final score. Value is the
// average confidence-adjusted rate over eligible entries, in [0,1]. A
// sub-score with no eligible entries is 0 and still carries its configured
// weight into the final sum.
type SubScore struct {
	Value     float64  `json:"value"`
	Weight    float64  `json:"weight"`
	Evaluated int      `json:"evaluated"`
	Eligible  int      `json:"eligible"`
	Samples   []Sample `json:"samples,omitempty"`
}

// MemberScore is the individual record behind one set member.
type MemberScore struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"` // adjusted rate x100
	Wins     uint64  `json:"wins"`
	Losses   uint64  `json:"losses"`
	Games    uint64  `json:"games"`
	Known    bool    `json:"known"`
	Eligible bool    `json:"eligible"`
}

// Breakdown is the full scoring result for one candidate set. Hero rounds
// fill TeamCombo and leave IntraSynergy zero; skill rounds do the reverse.
type Breakdown struct {
	SetIndex int      `json:"set_index"`
	Items    []string `json:"items"`

	Members      []MemberScore `json:"individual_scores"`
	Individual   SubScore      `json:"individual"`
	TeamCombo    SubScore      `json:"team_combo"`
	PairSynergy  SubScore      `json:"pair_synergy"`
	IntraSynergy SubScore      `json:"intra_synergy"`
	CrossSynergy SubScore      `json:"cross_synergy"`

	Total float64 `json:"total_score"` // 0-100
}

// Scorer scores candidate sets against a fixed snapshot. It is read-only
// and safe for concurrent use once built.
type Scorer struct {
	cfg  Config
	snap *stats.Snapshot

	heroEst      estimator.Estimator
	skillEst     estimator.Estimator
	heroPairEst  estimator.Estimator
	skillPairEst estimator.Estimator
	heroSkillEst estimator.Estimator
	tripleEst    estimator.Estimator
}

func New(cfg Config, snap *stats.Snapshot) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scorer{cfg: cfg, snap: snap}
	switch cfg.Estimator {
	case EstimatorBayes:
		// Shrinkage priors are global rates per statistics map.
		s.heroEst = estimator.NewShrinker(estimator.Prior(snap.Heroes), cfg.PriorWeight)
		s.skillEst = estimator.NewShrinker(estimator.Prior(snap.Skills), cfg.PriorWeight)
		s.heroPairEst = estimator.NewShrinker(estimator.Prior(snap.HeroPairs), cfg.PriorWeight)
		s.skillPairEst = estimator.NewShrinker(estimator.Prior(snap.SkillPairs), cfg.PriorWeight)
		s.heroSkillEst = estimator.NewShrinker(estimator.Prior(snap.HeroSkills), cfg.PriorWeight)
		s.tripleEst = estimator.NewShrinker(estimator.Prior(snap.HeroTriples), cfg.PriorWeight)
	default:
		w := estimator.NewWilson(cfg.Z)
		s.heroEst = w
		s.skillEst = w
		s.heroPairEst = w
		s.skillPairEst = w
		s.heroSkillEst = w
		s.tripleEst = w
	}
	return s, nil
}

func (s *Scorer) Config() Config { return s.cfg }

// acc averages estimates over the entries that meet the sample floor.
type acc struct {
	minGames uint64
	est      estimator.Estimator

	sum       float64
	eligible  int
	evaluated int
	samples   []Sample
}

// observe records one looked-up entry. Unknown entries (never observed) and
// entries below the sample floor are excluded from the average rather than
// scored as zero.
func (a *acc) observe(key string, pc stats.PairCount, known bool) {
	a.evaluated++
	if !known {
		return
	}
	rate := a.est.Estimate(pc.Wins, pc.Losses)
	eligible := pc.Total() >= a.minGames
	a.samples = append(a.samples, Sample{
		Key:      key,
		Wins:     pc.Wins,
		Losses:   pc.Losses,
		Estimate: rate,
		Eligible: eligible,
	})
	if eligible {
		a.sum += rate
		a.eligible++
	}
}

func (a *acc) subScore() SubScore {
	ss := SubScore{
		Evaluated: a.evaluated,
		Eligible:  a.eligible,
		Samples:   a.samples,
	}
	if a.eligible > 0 {
		ss.Value = a.sum / float64(a.eligible)
	}
	return ss
}

func pairKey(parts ...string) string {
	return strings.Join(parts, "+")
}

// ScoreHeroSet scores one candidate hero set for the current draft.
func (s *Scorer) ScoreHeroSet(setIndex int, set, currentHeroes, currentSkills []string) Breakdown {
	b := Breakdown{
		SetIndex: setIndex,
		Items:    append([]string(nil), set...),
	}

	// Individual performance per hero in the set.
	ind := acc{minGames: s.cfg.MinGames, est: s.heroEst}
	for _, hero := range set {
		pc, ok := s.snap.Hero(hero)
		ind.observe(hero, pc, ok)
		m := MemberScore{Name: hero, Wins: pc.Wins, Losses: pc.Losses, Games: pc.Total(), Known: ok}
		if ok {
			m.Score = s.heroEst.Estimate(pc.Wins, pc.Losses) * 100
			m.Eligible = pc.Total() >= s.cfg.MinGames
		}
		b.Members = append(b.Members, m)
	}
	b.Individual = ind.subScore()

	// Full-team combination bonus: every 3-hero team embedded in the union
	// of current team and candidate set that mixes both sides.
	candidate := map[string]bool{}
	for _, h := range set {
		candidate[h] = true
	}
	pool := append(append([]string(nil), currentHeroes...), set...)
	combo := acc{minGames: s.cfg.MinGames, est: s.tripleEst}
	for _, triple := range stats.Triples(pool) {
		fromSet, fromTeam := 0, 0
		for _, m := range triple.Members() {
			if candidate[m] {
				fromSet++
			} else {
				fromTeam++
			}
		}
		if fromSet == 0 || fromTeam == 0 {
			continue
		}
		pc, ok := s.snap.HeroTriple(triple)
		combo.observe(pairKey(triple.A, triple.B, triple.C), pc, ok)
	}
	b.TeamCombo = combo.subScore()

	// Pairwise synergy with the heroes already drafted.
	pairs := acc{minGames: s.cfg.MinGames, est: s.heroPairEst}
	for _, cur := range currentHeroes {
		for _, cand := range set {
			pc, ok := s.snap.HeroPair(cur, cand)
			pairs.observe(pairKey(cur, cand), pc, ok)
		}
	}
	b.PairSynergy = pairs.subScore()

	// Cross synergy of candidate heroes with the skills already drafted.
	cross := acc{minGames: s.cfg.MinGames, est: s.heroSkillEst}
	for _, cand := range set {
		for _, skill := range currentSkills {
			pc, ok := s.snap.HeroSkill(cand, skill)
			cross.observe(pairKey(cand, skill), pc, ok)
		}
	}
	b.CrossSynergy = cross.subScore()

	w := normalize([]float64{
		s.cfg.HeroWeights.Individual,
		s.cfg.HeroWeights.TeamCombo,
		s.cfg.HeroWeights.PairSynergy,
		s.cfg.HeroWeights.CrossSynergy,
	})
	b.Individual.Weight = w[0]
	b.TeamCombo.Weight = w[1]
	b.PairSynergy.Weight = w[2]
	b.CrossSynergy.Weight = w[3]

	b.Total = 100 * (w[0]*b.Individual.Value +
		w[1]*b.TeamCombo.Value +
		w[2]*b.PairSynergy.Value +
		w[3]*b.CrossSynergy.Value)
	return b
}

// ScoreSkillSet scores one candidate skill set for the current draft.
func (s *Scorer) ScoreSkillSet(setIndex int, set, currentHeroes, currentSkills []string) Breakdown {
	b := Breakdown{
		SetIndex: setIndex,
		Items:    append([]string(nil), set...),
	}

	ind := acc{minGames: s.cfg.MinGames, est: s.skillEst}
	for _, skill := range set {
		pc, ok := s.snap.Skill(skill)
		ind.observe(skill, pc, ok)
		m := MemberScore{Name: skill, Wins: pc.Wins, Losses: pc.Losses, Games: pc.Total(), Known: ok}
		if ok {
			m.Score = s.skillEst.Estimate(pc.Wins, pc.Losses) * 100
			m.Eligible = pc.Total() >= s.cfg.MinGames
		}
		b.Members = append(b.Members, m)
	}
	b.Individual = ind.subScore()

	// Synergy with the skills already drafted.
	current := acc{minGames: s.cfg.MinGames, est: s.skillPairEst}
	for _, cur := range currentSkills {
		for _, cand := range set {
			pc, ok := s.snap.SkillPair(cur, cand)
			current.observe(pairKey(cur, cand), pc, ok)
		}
	}
	b.PairSynergy = current.subScore()

	// Synergy among the candidate skills themselves.
	intra := acc{minGames: s.cfg.MinGames, est: s.skillPairEst}
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			pc, ok := s.snap.SkillPair(set[i], set[j])
			intra.observe(pairKey(set[i], set[j]), pc, ok)
		}
	}
	b.IntraSynergy = intra.subScore()

	// Cross synergy of candidate skills with the current heroes.
	cross := acc{minGames: s.cfg.MinGames, est: s.heroSkillEst}
	for _, hero := range currentHeroes {
		for _, cand := range set {
			pc, ok := s.snap.HeroSkill(hero, cand)
			cross.observe(pairKey(hero, cand), pc, ok)
		}
	}
	b.CrossSynergy = cross.subScore()

	w := normalize([]float64{
		s.cfg.SkillWeights.Individual,
		s.cfg.SkillWeights.CurrentSynergy,
		s.cfg.SkillWeights.IntraSynergy,
		s.cfg.SkillWeights.CrossSynergy,
	})
	b.Individual.Weight = w[0]
	b.PairSynergy.Weight = w[1]
	b.IntraSynergy.Weight = w[2]
	b.CrossSynergy.Weight = w[3]

	b.Total = 100 * (w[0]*b.Individual.Value +
		w[1]*b.PairSynergy.Value +
		w[2]*b.IntraSynergy.Value +
		w[3]*b.CrossSynergy.Value)
	return b
}
