package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
)

type TeamDefaults struct {
	TournamentID int64
	Season       string
}

type CreateTeamInput struct {
	TeamID        *int64
	TeamName      string
	TeamShortName string
	TeamLogo      string
	City          string
	Stadium       string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
	// Points nil derives 3-1-0 points from results.
	Points       *int
	Rating       *int
	Position     *int
	Form         string
	Streak       string
	HomeWins     int
	HomeDraws    int
	HomeLosses   int
	AwayWins     int
	AwayDraws    int
	AwayLosses   int
	YellowCards  int
	RedCards     int
	TournamentID int64
	Season       string
	IsActive     *bool
}

type TeamService struct {
	sessions SessionProvider
	defaults TeamDefaults
	logger   *logging.Logger
}

func NewTeamService(sessions SessionProvider, defaults TeamDefaults, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		sessions: sessions,
		defaults: defaults,
		logger:   logger,
	}
}

// List returns active teams in table order. tournamentID zero lists all tournaments.
func (s *TeamService) List(ctx context.Context, tournamentID int64) ([]tournamentteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List", tournamentAttr(tournamentID))
	defer span.End()

	if tournamentID < 0 {
		return nil, fmt.Errorf("%w: tournament id must not be negative", ErrInvalidInput)
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	defer closeSession(ctx, s.logger, session)

	teams, err := session.Teams().ListActive(ctx, tournamentteam.ListFilter{TournamentID: tournamentID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (tournamentteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	if teamID < 0 {
		return tournamentteam.Team{}, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return tournamentteam.Team{}, err
	}
	defer closeSession(ctx, s.logger, session)

	team, exists, err := session.Teams().GetActiveByTeamID(ctx, teamID)
	if err != nil {
		return tournamentteam.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return tournamentteam.Team{}, fmt.Errorf("%w: team_id=%d", ErrNotFound, teamID)
	}
	return team, nil
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (tournamentteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	team, err := s.buildTeam(input)
	if err != nil {
		return tournamentteam.Team{}, err
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return tournamentteam.Team{}, err
	}
	defer closeSession(ctx, s.logger, session)

	created, err := session.Teams().Insert(ctx, team)
	if err != nil {
		if errors.Is(err, tournamentteam.ErrDuplicateTeamID) {
			return tournamentteam.Team{}, fmt.Errorf("%w: team_id=%d already exists", ErrInvalidInput, team.TeamID)
		}
		return tournamentteam.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.TeamID, "tournament_id", created.TournamentID)
	return created, nil
}

// Update applies a partial update. Points are not patchable; they follow results on sync.
func (s *TeamService) Update(ctx context.Context, teamID int64, patch tournamentteam.Patch) (tournamentteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if teamID < 0 {
		return tournamentteam.Team{}, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}
	if patch.IsEmpty() {
		return tournamentteam.Team{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if patch.TeamName != nil {
		name := strings.TrimSpace(*patch.TeamName)
		if name == "" {
			return tournamentteam.Team{}, fmt.Errorf("%w: team name must not be empty", ErrInvalidInput)
		}
		patch.TeamName = &name
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return tournamentteam.Team{}, err
	}
	defer closeSession(ctx, s.logger, session)

	updated, exists, err := session.Teams().Update(ctx, teamID, patch)
	if err != nil {
		return tournamentteam.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return tournamentteam.Team{}, fmt.Errorf("%w: team_id=%d", ErrNotFound, teamID)
	}
	return updated, nil
}

// Delete deactivates a team; the row is kept.
func (s *TeamService) Delete(ctx context.Context, teamID int64) (tournamentteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if teamID < 0 {
		return tournamentteam.Team{}, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return tournamentteam.Team{}, err
	}
	defer closeSession(ctx, s.logger, session)

	deleted, exists, err := session.Teams().Deactivate(ctx, teamID)
	if err != nil {
		return tournamentteam.Team{}, fmt.Errorf("delete team: %w", err)
	}
	if !exists {
		return tournamentteam.Team{}, fmt.Errorf("%w: team_id=%d", ErrNotFound, teamID)
	}

	s.logger.InfoContext(ctx, "team deactivated", "team_id", teamID)
	return deleted, nil
}

func (s *TeamService) buildTeam(input CreateTeamInput) (tournamentteam.Team, error) {
	name := strings.TrimSpace(input.TeamName)
	if name == "" {
		return tournamentteam.Team{}, fmt.Errorf("%w: team_name is required", ErrInvalidInput)
	}

	team := tournamentteam.Team{
		TeamName:      name,
		TeamShortName: strings.TrimSpace(input.TeamShortName),
		TeamLogo:      strings.TrimSpace(input.TeamLogo),
		City:          strings.TrimSpace(input.City),
		Stadium:       strings.TrimSpace(input.Stadium),
		MatchesPlayed: input.MatchesPlayed,
		Wins:          input.Wins,
		Draws:         input.Draws,
		Losses:        input.Losses,
		GoalsFor:      input.GoalsFor,
		GoalsAgainst:  input.GoalsAgainst,
		Rating:        tournamentteam.DefaultRating,
		Form:          input.Form,
		Streak:        input.Streak,
		HomeWins:      input.HomeWins,
		HomeDraws:     input.HomeDraws,
		HomeLosses:    input.HomeLosses,
		AwayWins:      input.AwayWins,
		AwayDraws:     input.AwayDraws,
		AwayLosses:    input.AwayLosses,
		YellowCards:   input.YellowCards,
		RedCards:      input.RedCards,
		TournamentID:  input.TournamentID,
		Season:        strings.TrimSpace(input.Season),
		IsActive:      true,
	}

	if input.TeamID != nil {
		team.TeamID = *input.TeamID
	} else {
		team.TeamID = tournamentteam.DeriveTeamID(name)
	}
	if input.Rating != nil {
		team.Rating = *input.Rating
	}
	if input.Position != nil {
		position := *input.Position
		team.Position = &position
	}
	if input.IsActive != nil {
		team.IsActive = *input.IsActive
	}
	if team.TournamentID == 0 {
		team.TournamentID = s.defaults.TournamentID
	}
	if team.Season == "" {
		team.Season = s.defaults.Season
	}
	team.Points = team.LeaguePoints()
	if input.Points != nil {
		team.Points = *input.Points
	}
	team.GoalDifference = team.GoalsFor - team.GoalsAgainst

	if err := team.Validate(); err != nil {
		return tournamentteam.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return team, nil
}
