package types

// Client -> Server
// RecordChoice:
//   round_type: "hero" | "skill"
//   chosen_set: string[] // 3 items, or 2 in round 7
//   set_index: 0 | 1 | 2
//
// ApplyTransfer: {}

// Server -> Client
// StateSnapshot:
//   version: number
//   state: see snapshot.go
//
// Error:
//   error: string
