package meta

import (
	"fmt"
	"sort"

	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

// PartnerStat is one observed pairing of an item with a partner.
type PartnerStat struct {
	Name    string  `json:"name"`
	WinRate float64 `json:"win_rate"`
	Games   uint64  `json:"games"`
	Wins    uint64  `json:"wins"`
	Losses  uint64  `json:"losses"`
}

// ItemStats is the detail card for a single hero or skill, including its
// strongest observed partners and its record alongside the caller's current
// roster.
type ItemStats struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	WinRate float64 `json:"win_rate"`
	Games   uint64  `json:"total_games"`
	Wins    uint64  `json:"wins"`
	Losses  uint64  `json:"losses"`

	Synergies     []PartnerStat `json:"synergies,omitempty"`
	HeroSynergies []PartnerStat `json:"hero_synergies,omitempty"`

	CurrentTeamSynergies  []PartnerStat `json:"current_team_synergies,omitempty"`
	CurrentSkillSynergies []PartnerStat `json:"current_skill_synergies,omitempty"`
	CurrentHeroSynergies  []PartnerStat `json:"current_hero_synergies,omitempty"`
}

const (
	partnerMinGames = 2
	partnerLimit    = 10
)

func sortPartners(ps []PartnerStat) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].WinRate != ps[j].WinRate {
			return ps[i].WinRate > ps[j].WinRate
		}
		if ps[i].Games != ps[j].Games {
			return ps[i].Games > ps[j].Games
		}
		return ps[i].Name < ps[j].Name
	})
}

func capPartners(ps []PartnerStat) []PartnerStat {
	sortPartners(ps)
	if len(ps) > partnerLimit {
		ps = ps[:partnerLimit]
	}
	return ps
}

func partner(name string, pc stats.PairCount) PartnerStat {
	return PartnerStat{
		Name:    name,
		WinRate: pc.Rate(),
		Games:   pc.Total(),
		Wins:    pc.Wins,
		Losses:  pc.Losses,
	}
}

// HeroStats builds the detail card for one hero. currentHeroes provides the
// roster context for the current-team synergy list and may be empty.
func HeroStats(snap *stats.Snapshot, name string, currentHeroes []string) (ItemStats, error) {
	pc, ok := snap.Hero(name)
	if !ok {
		return ItemStats{}, fmt.Errorf("%w: hero %q", ErrUnknownItem, name)
	}
	out := ItemStats{
		Name: name, Type: "hero",
		WinRate: pc.Rate(), Games: pc.Total(), Wins: pc.Wins, Losses: pc.Losses,
	}

	var partners []PartnerStat
	for pair, ppc := range snap.HeroPairs {
		other := ""
		switch name {
		case pair.A:
			other = pair.B
		case pair.B:
			other = pair.A
		default:
			continue
		}
		if ppc.Total() >= partnerMinGames {
			partners = append(partners, partner(other, ppc))
		}
	}
	out.Synergies = capPartners(partners)

	for _, other := range currentHeroes {
		if other == name {
			continue
		}
		if ppc, ok := snap.HeroPair(name, other); ok && ppc.Total() > 0 {
			out.CurrentTeamSynergies = append(out.CurrentTeamSynergies, partner(other, ppc))
		}
	}
	sortPartners(out.CurrentTeamSynergies)
	return out, nil
}

// SkillStats builds the detail card for one skill, with both skill-partner
// and hero-partner synergies.
func SkillStats(snap *stats.Snapshot, name string, currentHeroes, currentSkills []string) (ItemStats, error) {
	pc, ok := snap.Skill(name)
	if !ok {
		return ItemStats{}, fmt.Errorf("%w: skill %q", ErrUnknownItem, name)
	}
	out := ItemStats{
		Name: name, Type: "skill",
		WinRate: pc.Rate(), Games: pc.Total(), Wins: pc.Wins, Losses: pc.Losses,
	}

	var skillPartners []PartnerStat
	for pair, ppc := range snap.SkillPairs {
		other := ""
		switch name {
		case pair.A:
			other = pair.B
		case pair.B:
			other = pair.A
		default:
			continue
		}
		if ppc.Total() >= partnerMinGames {
			skillPartners = append(skillPartners, partner(other, ppc))
		}
	}
	out.Synergies = capPartners(skillPartners)

	var heroPartners []PartnerStat
	for key, ppc := range snap.HeroSkills {
		if key.Skill != name || ppc.Total() < partnerMinGames {
			continue
		}
		heroPartners = append(heroPartners, partner(key.Hero, ppc))
	}
	out.HeroSynergies = capPartners(heroPartners)

	for _, other := range currentSkills {
		if other == name {
			continue
		}
		if ppc, ok := snap.SkillPair(name, other); ok && ppc.Total() > 0 {
			out.CurrentSkillSynergies = append(out.CurrentSkillSynergies, partner(other, ppc))
		}
	}
	sortPartners(out.CurrentSkillSynergies)

	for _, hero := range currentHeroes {
		if ppc, ok := snap.HeroSkill(hero, name); ok && ppc.Total() > 0 {
			out.CurrentHeroSynergies = append(out.CurrentHeroSynergies, partner(hero, ppc))
		}
	}
	sortPartners(out.CurrentHeroSynergies)
	return out, nil
}
