package stats

import "testing"

func TestNewHeroPair_Canonical(t *testing.T) {
	if NewHeroPair("zhaoyun", "caocao") != NewHeroPair("caocao", "zhaoyun") {
		t.Fatal("pair key must not depend on argument order")
	}
	p := NewHeroPair("zhaoyun", "caocao")
	if p.A != "caocao" || p.B != "zhaoyun" {
		t.Fatalf("expected sorted members, got %+v", p)
	}
}

func TestNewSkillPair_Canonical(t *testing.T) {
	if NewSkillPair("thunder", "heal") != NewSkillPair("heal", "thunder") {
		t.Fatal("pair key must not depend on argument order")
	}
}

func TestNewHeroTriple_Canonical(t *testing.T) {
	want := NewHeroTriple("a", "b", "c")
	perms := [][3]string{
		{"a", "c", "b"}, {"b", "a", "c"}, {"b", "c", "a"},
		{"c", "a", "b"}, {"c", "b", "a"},
	}
	for _, p := range perms {
		if got := NewHeroTriple(p[0], p[1], p[2]); got != want {
			t.Errorf("NewHeroTriple(%v) = %+v, want %+v", p, got, want)
		}
	}
}

func TestHeroTriple_Contains(t *testing.T) {
	tr := NewHeroTriple("a", "b", "c")
	for _, m := range []string{"a", "b", "c"} {
		if !tr.Contains(m) {
			t.Errorf("expected triple to contain %q", m)
		}
	}
	if tr.Contains("d") {
		t.Error("triple should not contain d")
	}
}

func TestTriples(t *testing.T) {
	tests := []struct {
		pool []string
		want int // C(n,3)
	}{
		{nil, 0},
		{[]string{"a"}, 0},
		{[]string{"a", "b"}, 0},
		{[]string{"a", "b", "c"}, 1},
		{[]string{"a", "b", "c", "d"}, 4},
		{[]string{"a", "b", "c", "d", "e"}, 10},
		{[]string{"a", "b", "c", "d", "e", "f", "g"}, 35},
	}
	for _, tt := range tests {
		got := Triples(tt.pool)
		if len(got) != tt.want {
			t.Errorf("Triples(%d items): got %d, want %d", len(tt.pool), len(got), tt.want)
			continue
		}
		seen := make(map[HeroTriple]bool, len(got))
		for _, tr := range got {
			if seen[tr] {
				t.Errorf("duplicate triple %+v", tr)
			}
			seen[tr] = true
		}
	}
}
