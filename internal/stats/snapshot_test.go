package stats

import "testing"

func TestPairCount(t *testing.T) {
	var pc PairCount
	if pc.Total() != 0 || pc.Rate() != 0 {
		t.Fatalf("zero value should report no games, got %+v", pc)
	}

	pc = PairCount{Wins: 3, Losses: 1}
	if pc.Total() != 4 {
		t.Errorf("Total = %d, want 4", pc.Total())
	}
	if pc.Rate() != 0.75 {
		t.Errorf("Rate = %v, want 0.75", pc.Rate())
	}
}

func TestSnapshot_RecordAndLookup(t *testing.T) {
	s := NewSnapshot()

	s.AddHeroResult("zhaoyun", true)
	s.AddHeroResult("zhaoyun", false)
	s.AddHeroResult("zhaoyun", true)

	pc, ok := s.Hero("zhaoyun")
	if !ok {
		t.Fatal("expected zhaoyun to be known")
	}
	if pc.Wins != 2 || pc.Losses != 1 {
		t.Errorf("got %+v, want 2 wins 1 loss", pc)
	}

	if _, ok := s.Hero("nobody"); ok {
		t.Error("unknown hero must report ok=false, not a zero count")
	}
}

func TestSnapshot_PairLookupIsSymmetric(t *testing.T) {
	s := NewSnapshot()
	s.AddHeroPairResult("b", "a", true)

	if pc, ok := s.HeroPair("a", "b"); !ok || pc.Wins != 1 {
		t.Errorf("HeroPair(a,b) = %+v, %v", pc, ok)
	}
	if pc, ok := s.HeroPair("b", "a"); !ok || pc.Wins != 1 {
		t.Errorf("HeroPair(b,a) = %+v, %v", pc, ok)
	}

	s.AddSkillPairResult("y", "x", false)
	if pc, ok := s.SkillPair("x", "y"); !ok || pc.Losses != 1 {
		t.Errorf("SkillPair(x,y) = %+v, %v", pc, ok)
	}
}

func TestSnapshot_HeroSkillIsOrdered(t *testing.T) {
	s := NewSnapshot()
	s.AddHeroSkillResult("hero", "skill", true)

	if _, ok := s.HeroSkill("hero", "skill"); !ok {
		t.Fatal("expected (hero, skill) to be known")
	}
	// Cross pairs are hero-then-skill, never the reverse.
	if _, ok := s.HeroSkill("skill", "hero"); ok {
		t.Error("(skill, hero) should not match")
	}
}

func TestSnapshot_TripleLookup(t *testing.T) {
	s := NewSnapshot()
	s.AddHeroTripleResult(NewHeroTriple("c", "a", "b"), true)

	if pc, ok := s.HeroTriple(NewHeroTriple("a", "b", "c")); !ok || pc.Wins != 1 {
		t.Errorf("triple lookup = %+v, %v", pc, ok)
	}
	if _, ok := s.HeroTriple(NewHeroTriple("a", "b", "d")); ok {
		t.Error("unknown triple must report ok=false")
	}
}
