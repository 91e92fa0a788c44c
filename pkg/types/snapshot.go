package types

// StateSnapshot:
//   version: number
//   state:
//     current_heroes: string[]
//     current_skills: string[]
//     round_number: 1..8
//     round_type: "hero" | "skill"
//     round_history: { round_number, round_type, chosen_set: string[], set_index }[]
//     transfer_pending: boolean
//     game_complete: boolean
