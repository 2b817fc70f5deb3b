package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/usecase"
)

type importRequest struct {
	TournamentID int64 `json:"tournament_id" validate:"omitempty,gt=0"`
}

type syncRequest struct {
	TournamentID int64 `json:"tournament_id" validate:"omitempty,gt=0"`
}

type createTeamRequest struct {
	TeamID        *int64 `json:"team_id" validate:"omitempty,min=0"`
	TeamName      string `json:"team_name" validate:"required,max=255"`
	TeamShortName string `json:"team_short_name" validate:"max=50"`
	TeamLogo      string `json:"team_logo" validate:"omitempty,max=500"`
	City          string `json:"city" validate:"max=100"`
	Stadium       string `json:"stadium" validate:"max=200"`
	MatchesPlayed int    `json:"matches_played" validate:"min=0"`
	Wins          int    `json:"wins" validate:"min=0"`
	Draws         int    `json:"draws" validate:"min=0"`
	Losses        int    `json:"losses" validate:"min=0"`
	GoalsFor      int    `json:"goals_for" validate:"min=0"`
	GoalsAgainst  int    `json:"goals_against" validate:"min=0"`
	Points        *int   `json:"points" validate:"omitempty,min=0"`
	Rating        *int   `json:"rating" validate:"omitempty,min=0"`
	Position      *int   `json:"position" validate:"omitempty,gt=0"`
	Form          string `json:"form" validate:"max=10"`
	Streak        string `json:"streak" validate:"max=20"`
	HomeWins      int    `json:"home_wins" validate:"min=0"`
	HomeDraws     int    `json:"home_draws" validate:"min=0"`
	HomeLosses    int    `json:"home_losses" validate:"min=0"`
	AwayWins      int    `json:"away_wins" validate:"min=0"`
	AwayDraws     int    `json:"away_draws" validate:"min=0"`
	AwayLosses    int    `json:"away_losses" validate:"min=0"`
	YellowCards   int    `json:"yellow_cards" validate:"min=0"`
	RedCards      int    `json:"red_cards" validate:"min=0"`
	TournamentID  int64  `json:"tournament_id" validate:"omitempty,gt=0"`
	Season        string `json:"season" validate:"max=20"`
	IsActive      *bool  `json:"is_active"`
}

// updateTeamRequest carries only the columns a client may change.
type updateTeamRequest struct {
	TeamName      *string `json:"team_name" validate:"omitempty,max=255"`
	TeamShortName *string `json:"team_short_name" validate:"omitempty,max=50"`
	TeamLogo      *string `json:"team_logo" validate:"omitempty,max=500"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	Stadium       *string `json:"stadium" validate:"omitempty,max=200"`
	MatchesPlayed *int    `json:"matches_played" validate:"omitempty,min=0"`
	Wins          *int    `json:"wins" validate:"omitempty,min=0"`
	Draws         *int    `json:"draws" validate:"omitempty,min=0"`
	Losses        *int    `json:"losses" validate:"omitempty,min=0"`
	GoalsFor      *int    `json:"goals_for" validate:"omitempty,min=0"`
	GoalsAgainst  *int    `json:"goals_against" validate:"omitempty,min=0"`
	Rating        *int    `json:"rating" validate:"omitempty,min=0"`
	Position      *int    `json:"position" validate:"omitempty,gt=0"`
	Form          *string `json:"form" validate:"omitempty,max=10"`
	Streak        *string `json:"streak" validate:"omitempty,max=20"`
	HomeWins      *int    `json:"home_wins" validate:"omitempty,min=0"`
	HomeDraws     *int    `json:"home_draws" validate:"omitempty,min=0"`
	HomeLosses    *int    `json:"home_losses" validate:"omitempty,min=0"`
	AwayWins      *int    `json:"away_wins" validate:"omitempty,min=0"`
	AwayDraws     *int    `json:"away_draws" validate:"omitempty,min=0"`
	AwayLosses    *int    `json:"away_losses" validate:"omitempty,min=0"`
	YellowCards   *int    `json:"yellow_cards" validate:"omitempty,min=0"`
	RedCards      *int    `json:"red_cards" validate:"omitempty,min=0"`
	Season        *string `json:"season" validate:"omitempty,max=20"`
	IsActive      *bool   `json:"is_active"`
}

type teamDTO struct {
	ID             int64  `json:"id"`
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	TeamShortName  string `json:"team_short_name"`
	TeamLogo       string `json:"team_logo"`
	City           string `json:"city"`
	Stadium        string `json:"stadium"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Rating         int    `json:"rating"`
	Position       *int   `json:"position"`
	Form           string `json:"form"`
	Streak         string `json:"streak"`
	HomeWins       int    `json:"home_wins"`
	HomeDraws      int    `json:"home_draws"`
	HomeLosses     int    `json:"home_losses"`
	AwayWins       int    `json:"away_wins"`
	AwayDraws      int    `json:"away_draws"`
	AwayLosses     int    `json:"away_losses"`
	YellowCards    int    `json:"yellow_cards"`
	RedCards       int    `json:"red_cards"`
	TournamentID   int64  `json:"tournament_id"`
	Season         string `json:"season"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type syncLogDTO struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournament_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	TeamsUpdated int    `json:"teams_updated"`
	SyncTime     string `json:"sync_time"`
}

func (req createTeamRequest) toInput() usecase.CreateTeamInput {
	return usecase.CreateTeamInput{
		TeamID:        req.TeamID,
		TeamName:      req.TeamName,
		TeamShortName: req.TeamShortName,
		TeamLogo:      req.TeamLogo,
		City:          req.City,
		Stadium:       req.Stadium,
		MatchesPlayed: req.MatchesPlayed,
		Wins:          req.Wins,
		Draws:         req.Draws,
		Losses:        req.Losses,
		GoalsFor:      req.GoalsFor,
		GoalsAgainst:  req.GoalsAgainst,
		Points:        req.Points,
		Rating:        req.Rating,
		Position:      req.Position,
		Form:          req.Form,
		Streak:        req.Streak,
		HomeWins:      req.HomeWins,
		HomeDraws:     req.HomeDraws,
		HomeLosses:    req.HomeLosses,
		AwayWins:      req.AwayWins,
		AwayDraws:     req.AwayDraws,
		AwayLosses:    req.AwayLosses,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		TournamentID:  req.TournamentID,
		Season:        req.Season,
		IsActive:      req.IsActive,
	}
}

func (req updateTeamRequest) toPatch() tournamentteam.Patch {
	return tournamentteam.Patch{
		TeamName:      req.TeamName,
		TeamShortName: req.TeamShortName,
		TeamLogo:      req.TeamLogo,
		City:          req.City,
		Stadium:       req.Stadium,
		MatchesPlayed: req.MatchesPlayed,
		Wins:          req.Wins,
		Draws:         req.Draws,
		Losses:        req.Losses,
		GoalsFor:      req.GoalsFor,
		GoalsAgainst:  req.GoalsAgainst,
		Rating:        req.Rating,
		Position:      req.Position,
		Form:          req.Form,
		Streak:        req.Streak,
		HomeWins:      req.HomeWins,
		HomeDraws:     req.HomeDraws,
		HomeLosses:    req.HomeLosses,
		AwayWins:      req.AwayWins,
		AwayDraws:     req.AwayDraws,
		AwayLosses:    req.AwayLosses,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		Season:        req.Season,
		IsActive:      req.IsActive,
	}
}

func teamToDTO(v tournamentteam.Team) teamDTO {
	return teamDTO{
		ID:             v.ID,
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		TeamShortName:  v.TeamShortName,
		TeamLogo:       v.TeamLogo,
		City:           v.City,
		Stadium:        v.Stadium,
		MatchesPlayed:  v.MatchesPlayed,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		Rating:         v.Rating,
		Position:       v.Position,
		Form:           v.Form,
		Streak:         v.Streak,
		HomeWins:       v.HomeWins,
		HomeDraws:      v.HomeDraws,
		HomeLosses:     v.HomeLosses,
		AwayWins:       v.AwayWins,
		AwayDraws:      v.AwayDraws,
		AwayLosses:     v.AwayLosses,
		YellowCards:    v.YellowCards,
		RedCards:       v.RedCards,
		TournamentID:   v.TournamentID,
		Season:         v.Season,
		IsActive:       v.IsActive,
		CreatedAt:      formatTime(v.CreatedAt),
		UpdatedAt:      formatTime(v.UpdatedAt),
	}
}

func syncLogToDTO(v synclog.Entry) syncLogDTO {
	return syncLogDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		Status:       string(v.Status),
		Message:      v.Message,
		TeamsUpdated: v.TeamsUpdated,
		SyncTime:     formatTime(v.SyncTime),
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

// queryInt parses an optional non-negative integer query parameter; absent yields zero.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: invalid query parameter %s=%q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

// queryInt parses a non-negative int; values beyond the platform int are rejected.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: invalid query parameter %s=%q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
