package meta

import (
	"sort"

	"github.com/liamqma/sanmou-yanwu/internal/draft"
	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

// PairSynergy is one observed pairing inside the final team.
type PairSynergy struct {
	Hero1   string  `json:"hero1"`
	Hero2   string  `json:"hero2"`
	WinRate float64 `json:"synergy_rate"`
	Games   uint64  `json:"games"`
}

// TeamStrength summarizes the finished roster's raw averages on a 0-100
// scale.
type TeamStrength struct {
	AvgHeroScore  float64 `json:"avg_hero_score"`
	AvgSkillScore float64 `json:"avg_skill_score"`
	OverallScore  float64 `json:"overall_score"`
}

// FinalAnalysis is produced once the 8-round draft is complete.
type FinalAnalysis struct {
	Heroes       []string             `json:"heroes"`
	Skills       []string             `json:"skills"`
	TeamStrength TeamStrength         `json:"team_strength"`
	Synergies    []PairSynergy        `json:"synergies"`
	History      []draft.HistoryEntry `json:"round_history"`
}

// BuildFinalAnalysis scores the completed roster: average raw win rates for
// heroes and skills, and the best observed pairings within the team.
func BuildFinalAnalysis(view draft.View, snap *stats.Snapshot) FinalAnalysis {
	fa := FinalAnalysis{
		Heroes:  view.Heroes,
		Skills:  view.Skills,
		History: view.History,
	}

	var heroSum, skillSum float64
	for _, h := range view.Heroes {
		if pc, ok := snap.Hero(h); ok {
			heroSum += pc.Rate() * 100
		}
	}
	for _, s := range view.Skills {
		if pc, ok := snap.Skill(s); ok {
			skillSum += pc.Rate() * 100
		}
	}
	if len(view.Heroes) > 0 {
		fa.TeamStrength.AvgHeroScore = heroSum / float64(len(view.Heroes))
	}
	if len(view.Skills) > 0 {
		fa.TeamStrength.AvgSkillScore = skillSum / float64(len(view.Skills))
	}
	fa.TeamStrength.OverallScore = (fa.TeamStrength.AvgHeroScore + fa.TeamStrength.AvgSkillScore) / 2

	for i := 0; i < len(view.Heroes); i++ {
		for j := i + 1; j < len(view.Heroes); j++ {
			pc, ok := snap.HeroPair(view.Heroes[i], view.Heroes[j])
			if !ok || pc.Total() == 0 {
				continue
			}
			fa.Synergies = append(fa.Synergies, PairSynergy{
				Hero1:   view.Heroes[i],
				Hero2:   view.Heroes[j],
				WinRate: pc.Rate(),
				Games:   pc.Total(),
			})
		}
	}
	sort.Slice(fa.Synergies, func(i, j int) bool {
		if fa.Synergies[i].WinRate != fa.Synergies[j].WinRate {
			return fa.Synergies[i].WinRate > fa.Synergies[j].WinRate
		}
		return fa.Synergies[i].Games > fa.Synergies[j].Games
	})
	if len(fa.Synergies) > 5 {
		fa.Synergies = fa.Synergies[:5]
	}
	return fa
}
