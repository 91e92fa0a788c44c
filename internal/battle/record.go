// Package battle holds historical match records and turns them into the
// aggregate statistics snapshot the scorer consumes.
package battle

import "time"

// Member is one hero slot on a team together with the skills it carried
// into the battle.
type Member struct {
	Hero   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Winner values as recorded by the extraction pipeline.
const (
	WinnerTeam1   = "1"
	WinnerTeam2   = "2"
	WinnerUnknown = "unknown"
)

// Record is one observed battle between two teams.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Source    string    `gorm:"index" json:"filename,omitempty"`
	Winner    string    `json:"winner"`
	Team1     []Member  `gorm:"serializer:json" json:"1"`
	Team2     []Member  `gorm:"serializer:json" json:"2"`
	CreatedAt time.Time `json:"-"`
}

func (Record) TableName() string { return "battles" }

func (r Record) teams() [2][]Member {
	return [2][]Member{r.Team1, r.Team2}
}

// teamWon maps a 0-based team index to whether that team won. Battles with
// an unknown winner count as a loss for both sides, matching how the
// extraction pipeline has always tallied them.
func (r Record) teamWon(idx int) bool {
	switch r.Winner {
	case WinnerTeam1:
		return idx == 0
	case WinnerTeam2:
		return idx == 1
	}
	return false
}
