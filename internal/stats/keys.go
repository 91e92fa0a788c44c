package stats

import "sort"

// Symmetric relations are keyed by value types whose constructors sort the
// members, so (A,B) and (B,A) always land on the same map entry. Building a
// key any other way is how lookups silently start missing.

// HeroPair is an unordered pair of hero names, stored sorted.
type HeroPair struct {
	A, B string
}

func NewHeroPair(a, b string) HeroPair {
	if b < a {
		a, b = b, a
	}
	return HeroPair{A: a, B: b}
}

// SkillPair is an unordered pair of skill names, stored sorted.
type SkillPair struct {
	A, B string
}

func NewSkillPair(a, b string) SkillPair {
	if b < a {
		a, b = b, a
	}
	return SkillPair{A: a, B: b}
}

// HeroSkill is an ordered (hero, skill) key. Not symmetric.
type HeroSkill struct {
	Hero  string
	Skill string
}

// HeroTriple is a 3-hero combination, stored sorted.
type HeroTriple struct {
	A, B, C string
}

func NewHeroTriple(a, b, c string) HeroTriple {
	v := []string{a, b, c}
	sort.Strings(v)
	return HeroTriple{A: v[0], B: v[1], C: v[2]}
}

func (t HeroTriple) Members() [3]string {
	return [3]string{t.A, t.B, t.C}
}

// Contains reports whether name is one of the triple's members.
func (t HeroTriple) Contains(name string) bool {
	return t.A == name || t.B == name || t.C == name
}

// Triples enumerates every size-3 subset of pool as sorted HeroTriples, in
// lexicographic index order i<j<k. Pools smaller than 3 yield nothing.
// Pools stay around a dozen entries in practice, so the cubic walk is cheap.
func Triples(pool []string) []HeroTriple {
	n := len(pool)
	if n < 3 {
		return nil
	}
	out := make([]HeroTriple, 0, n*(n-1)*(n-2)/6)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				out = append(out, NewHeroTriple(pool[i], pool[j], pool[k]))
			}
		}
	}
	return out
}
