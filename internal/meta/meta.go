// Package meta derives presentation-level analytics from a statistics
// snapshot: top performers, usage counts, winning team combinations and
// per-item synergy summaries.
package meta

import (
	"errors"
	"sort"

	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

var ErrUnknownItem = errors.New("item not found in battle history")

// RankedItem is one hero or skill ranked by raw win rate.
type RankedItem struct {
	Name    string  `json:"name"`
	WinRate float64 `json:"win_rate"`
	Games   uint64  `json:"games"`
}

func rankByWinRate(m map[string]stats.PairCount, minGames uint64, limit int) []RankedItem {
	out := make([]RankedItem, 0, len(m))
	for name, pc := range m {
		if pc.Total() < minGames {
			continue
		}
		out = append(out, RankedItem{Name: name, WinRate: pc.Rate(), Games: pc.Total()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func rankByUsage(m map[string]stats.PairCount, limit int) []RankedItem {
	out := make([]RankedItem, 0, len(m))
	for name, pc := range m {
		out = append(out, RankedItem{Name: name, WinRate: pc.Rate(), Games: pc.Total()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopHeroes ranks heroes by win rate, requiring at least minGames games.
func TopHeroes(snap *stats.Snapshot, minGames uint64, limit int) []RankedItem {
	return rankByWinRate(snap.Heroes, minGames, limit)
}

// TopSkills ranks skills by win rate, requiring at least minGames games.
func TopSkills(snap *stats.Snapshot, minGames uint64, limit int) []RankedItem {
	return rankByWinRate(snap.Skills, minGames, limit)
}

// ComboStat is a 3-hero team combination with its record.
type ComboStat struct {
	Heroes  []string `json:"heroes"`
	Wins    uint64   `json:"wins"`
	Losses  uint64   `json:"losses"`
	Games   uint64   `json:"total_games"`
	WinRate float64  `json:"win_rate"`
}

// WinningCombos lists observed 3-hero combinations that have won at least
// once, best record first.
func WinningCombos(snap *stats.Snapshot, limit int) []ComboStat {
	out := make([]ComboStat, 0, len(snap.HeroTriples))
	for triple, pc := range snap.HeroTriples {
		if pc.Wins == 0 {
			continue
		}
		m := triple.Members()
		out = append(out, ComboStat{
			Heroes:  []string{m[0], m[1], m[2]},
			Wins:    pc.Wins,
			Losses:  pc.Losses,
			Games:   pc.Total(),
			WinRate: pc.Rate(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].Heroes[0] < out[j].Heroes[0]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Summary is the top-level card of the analytics payload.
type Summary struct {
	TotalBattles uint64 `json:"total_battles"`
	TotalHeroes  int    `json:"total_heroes"`
	TotalSkills  int    `json:"total_skills"`
	Team1Wins    uint64 `json:"team1_wins"`
	Team2Wins    uint64 `json:"team2_wins"`
	UnknownWins  uint64 `json:"unknown_wins"`
}

// WinRateStats summarizes the distribution of observed win rates.
type WinRateStats struct {
	HeroAvgWinRate  float64 `json:"hero_avg_winrate"`
	SkillAvgWinRate float64 `json:"skill_avg_winrate"`
	HeroesAbove50   int     `json:"heroes_above_50"`
	SkillsAbove50   int     `json:"skills_above_50"`
}

// Analytics is the full dashboard payload.
type Analytics struct {
	Summary       Summary      `json:"summary"`
	TopHeroes     []RankedItem `json:"top_heroes"`
	TopSkills     []RankedItem `json:"top_skills"`
	HeroUsage     []RankedItem `json:"hero_usage"`
	SkillUsage    []RankedItem `json:"skill_usage"`
	WinningCombos []ComboStat  `json:"winning_combos"`
	WinRateStats  WinRateStats `json:"win_rate_stats"`
}

func BuildAnalytics(snap *stats.Snapshot) Analytics {
	a := Analytics{
		Summary: Summary{
			TotalBattles: snap.TotalBattles,
			TotalHeroes:  len(snap.Heroes),
			TotalSkills:  len(snap.Skills),
			Team1Wins:    snap.Team1Wins,
			Team2Wins:    snap.Team2Wins,
			UnknownWins:  snap.UnknownWins,
		},
		TopHeroes:     TopHeroes(snap, 1, 20),
		TopSkills:     TopSkills(snap, 1, 30),
		HeroUsage:     rankByUsage(snap.Heroes, 20),
		SkillUsage:    rankByUsage(snap.Skills, 30),
		WinningCombos: WinningCombos(snap, 15),
	}
	a.WinRateStats = winRateStats(snap)
	return a
}

func winRateStats(snap *stats.Snapshot) WinRateStats {
	var s WinRateStats
	var heroSum, skillSum float64
	var heroN, skillN int
	for _, pc := range snap.Heroes {
		if pc.Total() == 0 {
			continue
		}
		heroSum += pc.Rate()
		heroN++
		if pc.Rate() > 0.5 {
			s.HeroesAbove50++
		}
	}
	for _, pc := range snap.Skills {
		if pc.Total() == 0 {
			continue
		}
		skillSum += pc.Rate()
		skillN++
		if pc.Rate() > 0.5 {
			s.SkillsAbove50++
		}
	}
	if heroN > 0 {
		s.HeroAvgWinRate = heroSum / float64(heroN)
	}
	if skillN > 0 {
		s.SkillAvgWinRate = skillSum / float64(skillN)
	}
	return s
}
