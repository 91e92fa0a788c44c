package draft

import (
	"errors"
	"fmt"
)

var ErrSeedHeroCount = errors.New("need exactly 4 seed heroes")
var ErrSeedSkillCount = errors.New("need exactly 4 seed skills")
var ErrGameAlreadyCompleted = errors.New("game already completed")
var ErrWrongRoundType = errors.New("choice does not match round type")
var ErrWrongSetSize = errors.New("chosen set size does not match round")
var ErrTransferNotPending = errors.New("transfer step not pending")

type RoundType string

const (
	RoundHero     RoundType = "hero"
	RoundSkill    RoundType = "skill"
	RoundTransfer RoundType = "transfer"
)

const (
	FirstRound = 1
	FinalRound = 8
	seedCount  = 4
)

// RoundOrder maps round number (1-based) to the kind of option sets offered
// that round. Rounds 1, 4 and 7 draft heroes, the rest draft skills.
var RoundOrder = []RoundType{
	RoundHero,  // 1
	RoundSkill, // 2
	RoundSkill, // 3
	RoundHero,  // 4
	RoundSkill, // 5
	RoundSkill, // 6
	RoundHero,  // 7
	RoundSkill, // 8
}

// TypeForRound returns the round type for a 1-based round number.
func TypeForRound(round int) (RoundType, bool) {
	if round < FirstRound || round > FinalRound {
		return "", false
	}
	return RoundOrder[round-1], true
}

// ItemsPerSet returns how many heroes or skills each offered option set
// holds in the given round. Round 7 offers pairs of heroes, every other
// round offers three items.
func ItemsPerSet(round int) int {
	if round == 7 {
		return 2
	}
	return 3
}

type HistoryEntry struct {
	Round    int       `json:"round_number"`
	Type     RoundType `json:"round_type"`
	Chosen   []string  `json:"chosen_set"`
	SetIndex int       `json:"set_index"`
}

// State tracks one player's draft across the 8-round sequence. A single
// session owns a State; it is not safe for concurrent mutation.
type State struct {
	Heroes  []string
	Skills  []string
	Round   int
	History []HistoryEntry

	// TransferPending marks the special step between rounds 6 and 7 where
	// the rules let the player swap in one unchosen hero and two unchosen
	// non-hero skills. The step is modeled explicitly but applies no roster
	// change yet; see ApplyTransfer.
	TransferPending bool
}

// New seeds a draft with exactly 4 starting heroes and 4 starting skills.
func New(seedHeroes, seedSkills []string) (*State, error) {
	if len(seedHeroes) != seedCount {
		return nil, fmt.Errorf("%w, got %d", ErrSeedHeroCount, len(seedHeroes))
	}
	if len(seedSkills) != seedCount {
		return nil, fmt.Errorf("%w, got %d", ErrSeedSkillCount, len(seedSkills))
	}
	s := &State{
		Heroes: append([]string(nil), seedHeroes...),
		Skills: append([]string(nil), seedSkills...),
		Round:  FirstRound,
	}
	return s, nil
}

// Complete reports whether all 8 rounds have been recorded.
func (s *State) Complete() bool {
	return s.Round > FinalRound
}

// RecordChoice appends the chosen set's members to the matching roster,
// records the round in history and advances the round counter. It is the
// only mutation in the core loop and never touches scoring.
func (s *State) RecordChoice(rt RoundType, chosen []string, setIndex int) error {
	if s.Complete() {
		return ErrGameAlreadyCompleted
	}
	want, _ := TypeForRound(s.Round)
	if rt != want {
		return fmt.Errorf("%w: round %d is a %s round", ErrWrongRoundType, s.Round, want)
	}
	if len(chosen) != ItemsPerSet(s.Round) {
		return fmt.Errorf("%w: round %d takes %d items, got %d",
			ErrWrongSetSize, s.Round, ItemsPerSet(s.Round), len(chosen))
	}

	switch rt {
	case RoundHero:
		s.Heroes = append(s.Heroes, chosen...)
	case RoundSkill:
		s.Skills = append(s.Skills, chosen...)
	}

	s.History = append(s.History, HistoryEntry{
		Round:    s.Round,
		Type:     rt,
		Chosen:   append([]string(nil), chosen...),
		SetIndex: setIndex,
	})
	s.Round++
	if s.Round == 7 {
		s.TransferPending = true
	}
	return nil
}

// ApplyTransfer acknowledges the post-round-6 transfer step. The step's
// scoring rules are not known, so it records into history without changing
// the roster or the round counter; round 7 proceeds whether or not the
// caller invokes it.
func (s *State) ApplyTransfer() error {
	if !s.TransferPending {
		return ErrTransferNotPending
	}
	s.TransferPending = false
	s.History = append(s.History, HistoryEntry{
		Round: s.Round,
		Type:  RoundTransfer,
	})
	return nil
}

// View is a copy of the state safe to hand outside the owning session.
type View struct {
	Heroes          []string       `json:"current_heroes"`
	Skills          []string       `json:"current_skills"`
	Round           int            `json:"round_number"`
	RoundType       RoundType      `json:"round_type,omitempty"`
	History         []HistoryEntry `json:"round_history"`
	TransferPending bool           `json:"transfer_pending"`
	Complete        bool           `json:"game_complete"`
}

func (s *State) View() View {
	v := View{
		Heroes:          append([]string(nil), s.Heroes...),
		Skills:          append([]string(nil), s.Skills...),
		Round:           s.Round,
		History:         append([]HistoryEntry(nil), s.History...),
		TransferPending: s.TransferPending,
		Complete:        s.Complete(),
	}
	if rt, ok := TypeForRound(s.Round); ok {
		v.RoundType = rt
	}
	return v
}
