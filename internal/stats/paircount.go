package stats

// PairCount is the win/loss tally for a single keyed entity or relation.
// A zero-valued PairCount means "observed, never won"; absence of a key from
// a Snapshot map means "never observed". Callers must not conflate the two.
type PairCount struct {
	Wins   uint64 `json:"wins"`
	Losses uint64 `json:"losses"`
}

func (p PairCount) Total() uint64 {
	return p.Wins + p.Losses
}

// Rate returns the raw win rate, 0 when nothing was observed.
func (p PairCount) Rate() float64 {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return float64(p.Wins) / float64(total)
}

func (p PairCount) add(won bool) PairCount {
	if won {
		p.Wins++
	} else {
		p.Losses++
	}
	return p
}
