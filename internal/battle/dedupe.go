package battle

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Fingerprint produces a stable identity for a battle: the winner plus both
// team compositions with heroes and skills in canonical order. Two
// screenshots of the same match produce the same fingerprint regardless of
// extraction order.
func Fingerprint(r Record) string {
	h := sha256.New()
	h.Write([]byte(r.Winner))
	for _, team := range r.teams() {
		sides := make([]string, 0, len(team))
		for _, m := range team {
			skills := append([]string(nil), m.Skills...)
			sort.Strings(skills)
			sides = append(sides, m.Hero+":"+strings.Join(skills, ","))
		}
		sort.Strings(sides)
		h.Write([]byte("|" + strings.Join(sides, ";")))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Dedupe drops duplicate battles, keeping the first occurrence of each
// fingerprint. Input order is preserved.
func Dedupe(records []Record) []Record {
	seen := make(map[string]bool, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		fp := Fingerprint(r)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		out = append(out, r)
	}
	return out
}
