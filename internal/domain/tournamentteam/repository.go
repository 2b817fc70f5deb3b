package tournamentteam

import (
	"context"
	"errors"
)

var ErrDuplicateTeamID = errors.New("team id already exists")

// ListFilter narrows ListActive. Zero TournamentID lists every tournament.
type ListFilter struct {
	TournamentID int64
}

// StandingUpdate is the recomputed table state of one team.
type StandingUpdate struct {
	TournamentID int64
	TeamID       int64
	Position     int
	Points       int
}

// Repository describes tournament team persistence needs from use cases.
// ListActive orders by points, goal difference and goals scored, all descending.
type Repository interface {
	ListActive(ctx context.Context, filter ListFilter) ([]Team, error)
	GetActiveByTeamID(ctx context.Context, teamID int64) (Team, bool, error)
	ListActiveTournamentIDs(ctx context.Context) ([]int64, error)
	Insert(ctx context.Context, team Team) (Team, error)
	UpsertStanding(ctx context.Context, team Team) error
	Update(ctx context.Context, teamID int64, patch Patch) (Team, bool, error)
	Deactivate(ctx context.Context, teamID int64) (Team, bool, error)
	UpdateStanding(ctx context.Context, update StandingUpdate) error
}
