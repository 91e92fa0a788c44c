package stats

// Snapshot is an immutable view of aggregated battle outcomes. It is built
// once by the aggregation step and read concurrently by scorers; nothing may
// mutate it after that.
type Snapshot struct {
	Heroes      map[string]PairCount
	Skills      map[string]PairCount
	HeroPairs   map[HeroPair]PairCount
	SkillPairs  map[SkillPair]PairCount
	HeroSkills  map[HeroSkill]PairCount
	HeroTriples map[HeroTriple]PairCount

	Team1Wins    uint64
	Team2Wins    uint64
	UnknownWins  uint64
	TotalBattles uint64
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Heroes:      map[string]PairCount{},
		Skills:      map[string]PairCount{},
		HeroPairs:   map[HeroPair]PairCount{},
		SkillPairs:  map[SkillPair]PairCount{},
		HeroSkills:  map[HeroSkill]PairCount{},
		HeroTriples: map[HeroTriple]PairCount{},
	}
}

// Lookup accessors return (count, false) when the key was never observed.

func (s *Snapshot) Hero(name string) (PairCount, bool) {
	pc, ok := s.Heroes[name]
	return pc, ok
}

func (s *Snapshot) Skill(name string) (PairCount, bool) {
	pc, ok := s.Skills[name]
	return pc, ok
}

func (s *Snapshot) HeroPair(a, b string) (PairCount, bool) {
	pc, ok := s.HeroPairs[NewHeroPair(a, b)]
	return pc, ok
}

func (s *Snapshot) SkillPair(a, b string) (PairCount, bool) {
	pc, ok := s.SkillPairs[NewSkillPair(a, b)]
	return pc, ok
}

func (s *Snapshot) HeroSkill(hero, skill string) (PairCount, bool) {
	pc, ok := s.HeroSkills[HeroSkill{Hero: hero, Skill: skill}]
	return pc, ok
}

func (s *Snapshot) HeroTriple(t HeroTriple) (PairCount, bool) {
	pc, ok := s.HeroTriples[t]
	return pc, ok
}

// Recording methods, used only while the aggregation step builds the
// snapshot.

func (s *Snapshot) AddHeroResult(name string, won bool) {
	s.Heroes[name] = s.Heroes[name].add(won)
}

func (s *Snapshot) AddSkillResult(name string, won bool) {
	s.Skills[name] = s.Skills[name].add(won)
}

func (s *Snapshot) AddHeroPairResult(a, b string, won bool) {
	k := NewHeroPair(a, b)
	s.HeroPairs[k] = s.HeroPairs[k].add(won)
}

func (s *Snapshot) AddSkillPairResult(a, b string, won bool) {
	k := NewSkillPair(a, b)
	s.SkillPairs[k] = s.SkillPairs[k].add(won)
}

func (s *Snapshot) AddHeroSkillResult(hero, skill string, won bool) {
	k := HeroSkill{Hero: hero, Skill: skill}
	s.HeroSkills[k] = s.HeroSkills[k].add(won)
}

func (s *Snapshot) AddHeroTripleResult(t HeroTriple, won bool) {
	s.HeroTriples[t] = s.HeroTriples[t].add(won)
}
