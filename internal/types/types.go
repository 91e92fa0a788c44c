package types

import "github.com/liamqma/sanmou-yanwu/internal/draft"

type ClientMessage struct {
	Type      string          `json:"type"`
	RoundType draft.RoundType `json:"round_type,omitempty"`
	ChosenSet []string        `json:"chosen_set,omitempty"`
	SetIndex  int             `json:"set_index,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"` // "StateSnapshot" | "Error"
	Version int         `json:"version,omitempty"`
	State   *draft.View `json:"state,omitempty"`
	Error   string      `json:"error,omitempty"`
}
