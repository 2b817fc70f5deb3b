package wmfl

// TeamStanding is one team row scraped from a tournament standings table.
// Nil numeric fields were not present in the source row.
type TeamStanding struct {
	Position     *int   `json:"position,omitempty"`
	TeamName     string `json:"team_name"`
	Games        *int   `json:"games,omitempty"`
	Wins         *int   `json:"wins,omitempty"`
	Draws        *int   `json:"draws,omitempty"`
	Losses       *int   `json:"losses,omitempty"`
	GoalsFor     *int   `json:"goals_for,omitempty"`
	GoalsAgainst *int   `json:"goals_against,omitempty"`
	Points       *int   `json:"points,omitempty"`
}

// ValueOr returns *v, or fallback when the field was not parsed.
func ValueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func intPtr(v int) *int {
	return &v
}
