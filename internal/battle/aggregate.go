package battle

import (
	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

// Aggregate counts battle outcomes into a fresh statistics snapshot. For
// each team in each battle it tallies individual heroes and skills, every
// unordered hero pair and skill pair, every (hero, skill) cross pair, and
// every 3-hero combination embedded in the team.
func Aggregate(records []Record) *stats.Snapshot {
	snap := stats.NewSnapshot()

	for _, r := range records {
		snap.TotalBattles++
		switch r.Winner {
		case WinnerTeam1:
			snap.Team1Wins++
		case WinnerTeam2:
			snap.Team2Wins++
		default:
			snap.UnknownWins++
		}

		for idx, team := range r.teams() {
			won := r.teamWon(idx)

			heroes := make([]string, 0, len(team))
			allSkills := make([]string, 0, len(team)*3)
			for _, m := range team {
				heroes = append(heroes, m.Hero)
				allSkills = append(allSkills, m.Skills...)

				snap.AddHeroResult(m.Hero, won)
				for _, skill := range m.Skills {
					snap.AddSkillResult(skill, won)
				}
			}

			for i := 0; i < len(heroes); i++ {
				for j := i + 1; j < len(heroes); j++ {
					snap.AddHeroPairResult(heroes[i], heroes[j], won)
				}
			}
			for i := 0; i < len(allSkills); i++ {
				for j := i + 1; j < len(allSkills); j++ {
					snap.AddSkillPairResult(allSkills[i], allSkills[j], won)
				}
			}
			for _, hero := range heroes {
				for _, skill := range allSkills {
					snap.AddHeroSkillResult(hero, skill, won)
				}
			}
			for _, triple := range stats.Triples(heroes) {
				snap.AddHeroTripleResult(triple, won)
			}
		}
	}
	return snap
}
