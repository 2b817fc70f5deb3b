package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	qb "github.com/riskibarqy/wmfl-standings/internal/platform/querybuilder"
)

const tournamentTeamsTable = "wmfl_tournament_teams"

// teamTableModel maps wmfl_tournament_teams. Readonly columns are filled by the database.
type teamTableModel struct {
	ID             int64         `db:"id,readonly"`
	TeamID         int64         `db:"team_id"`
	TeamName       string        `db:"team_name"`
	TeamShortName  string        `db:"team_short_name"`
	TeamLogo       string        `db:"team_logo"`
	City           string        `db:"city"`
	Stadium        string        `db:"stadium"`
	MatchesPlayed  int           `db:"matches_played"`
	Wins           int           `db:"wins"`
	Draws          int           `db:"draws"`
	Losses         int           `db:"losses"`
	GoalsFor       int           `db:"goals_for"`
	GoalsAgainst   int           `db:"goals_against"`
	GoalDifference int           `db:"goal_difference,readonly"`
	Points         int           `db:"points"`
	Rating         int           `db:"rating"`
	Position       sql.NullInt64 `db:"position"`
	Form           string        `db:"form"`
	Streak         string        `db:"streak"`
	HomeWins       int           `db:"home_wins"`
	HomeDraws      int           `db:"home_draws"`
	HomeLosses     int           `db:"home_losses"`
	AwayWins       int           `db:"away_wins"`
	AwayDraws      int           `db:"away_draws"`
	AwayLosses     int           `db:"away_losses"`
	YellowCards    int           `db:"yellow_cards"`
	RedCards       int           `db:"red_cards"`
	TournamentID   int64         `db:"tournament_id"`
	Season         string        `db:"season"`
	IsActive       bool          `db:"is_active"`
	CreatedAt      time.Time     `db:"created_at,readonly"`
	UpdatedAt      time.Time     `db:"updated_at,readonly"`
}

var teamColumns = qb.ModelColumns(teamTableModel{})

func teamRowFromDomain(t tournamentteam.Team) teamTableModel {
	return teamTableModel{
		TeamID:        t.TeamID,
		TeamName:      t.TeamName,
		TeamShortName: t.TeamShortName,
		TeamLogo:      t.TeamLogo,
		City:          t.City,
		Stadium:       t.Stadium,
		MatchesPlayed: t.MatchesPlayed,
		Wins:          t.Wins,
		Draws:         t.Draws,
		Losses:        t.Losses,
		GoalsFor:      t.GoalsFor,
		GoalsAgainst:  t.GoalsAgainst,
		Points:        t.Points,
		Rating:        t.Rating,
		Position:      intPtrToNullInt64(t.Position),
		Form:          t.Form,
		Streak:        t.Streak,
		HomeWins:      t.HomeWins,
		HomeDraws:     t.HomeDraws,
		HomeLosses:    t.HomeLosses,
		AwayWins:      t.AwayWins,
		AwayDraws:     t.AwayDraws,
		AwayLosses:    t.AwayLosses,
		YellowCards:   t.YellowCards,
		RedCards:      t.RedCards,
		TournamentID:  t.TournamentID,
		Season:        t.Season,
		IsActive:      t.IsActive,
	}
}

func (row teamTableModel) toDomain() tournamentteam.Team {
	return tournamentteam.Team{
		ID:             row.ID,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		TeamShortName:  row.TeamShortName,
		TeamLogo:       row.TeamLogo,
		City:           row.City,
		Stadium:        row.Stadium,
		MatchesPlayed:  row.MatchesPlayed,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Rating:         row.Rating,
		Position:       nullInt64ToIntPtr(row.Position),
		Form:           row.Form,
		Streak:         row.Streak,
		HomeWins:       row.HomeWins,
		HomeDraws:      row.HomeDraws,
		HomeLosses:     row.HomeLosses,
		AwayWins:       row.AwayWins,
		AwayDraws:      row.AwayDraws,
		AwayLosses:     row.AwayLosses,
		YellowCards:    row.YellowCards,
		RedCards:       row.RedCards,
		TournamentID:   row.TournamentID,
		Season:         row.Season,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
