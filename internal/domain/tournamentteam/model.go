package tournamentteam

import (
	"fmt"
	"time"
)

const (
	DefaultRating = 1500
	// RatingPerPoint is added to DefaultRating for every league point on import.
	RatingPerPoint = 10
)

// Team is one persisted row of a tournament standings table.
type Team struct {
	ID             int64
	TeamID         int64
	TeamName       string
	TeamShortName  string
	TeamLogo       string
	City           string
	Stadium        string
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Rating         int
	Position       *int
	Form           string
	Streak         string
	HomeWins       int
	HomeDraws      int
	HomeLosses     int
	AwayWins       int
	AwayDraws      int
	AwayLosses     int
	YellowCards    int
	RedCards       int
	TournamentID   int64
	Season         string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t Team) Validate() error {
	if t.TeamID < 0 {
		return fmt.Errorf("team id must not be negative")
	}
	if t.TeamName == "" {
		return fmt.Errorf("team name is required")
	}
	if t.TournamentID <= 0 {
		return fmt.Errorf("tournament id must be greater than zero")
	}
	for name, value := range map[string]int{
		"matches_played": t.MatchesPlayed,
		"wins":           t.Wins,
		"draws":          t.Draws,
		"losses":         t.Losses,
		"goals_for":      t.GoalsFor,
		"goals_against":  t.GoalsAgainst,
	} {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// LeaguePoints is the 3-1-0 score derived from results.
func (t Team) LeaguePoints() int {
	return 3*t.Wins + t.Draws
}

// ImportRating is the rating assigned to a team imported with points.
func ImportRating(points int) int {
	return DefaultRating + RatingPerPoint*points
}
