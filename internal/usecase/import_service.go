package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/wmfl-standings/external/wmfl"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
)

const importNotFoundMessage = "tournament standings not found: the tournament may be closed or the id is wrong"

// StandingsFetcher downloads the raw standings page of a tournament.
type StandingsFetcher interface {
	FetchStandingsPage(ctx context.Context, tournamentID int64) (string, error)
}

type ImportConfig struct {
	DefaultTournamentID int64
	Season              string
}

type ImportInput struct {
	// TournamentID zero selects ImportConfig.DefaultTournamentID.
	TournamentID int64
}

type ImportResult struct {
	Success         bool                `json:"success"`
	ImportedCount   int                 `json:"imported_count"`
	TotalTeams      int                 `json:"total_teams"`
	TournamentID    int64               `json:"tournament_id"`
	TournamentTitle string              `json:"tournament_title,omitempty"`
	NotFound        bool                `json:"not_found,omitempty"`
	Message         string              `json:"message"`
	Teams           []wmfl.TeamStanding `json:"teams"`
}

type ImportService struct {
	fetcher  StandingsFetcher
	sessions SessionProvider
	cfg      ImportConfig
	logger   *logging.Logger
}

func NewImportService(fetcher StandingsFetcher, sessions SessionProvider, cfg ImportConfig, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	cfg.Season = strings.TrimSpace(cfg.Season)
	return &ImportService{
		fetcher:  fetcher,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Import fetches, parses and upserts one tournament's standings.
// A team that fails to persist is logged and skipped.
func (s *ImportService) Import(ctx context.Context, input ImportInput) (ImportResult, error) {
	tournamentID := input.TournamentID
	if tournamentID == 0 {
		tournamentID = s.cfg.DefaultTournamentID
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import", tournamentAttr(tournamentID))
	defer span.End()

	if tournamentID <= 0 {
		return ImportResult{}, fmt.Errorf("%w: tournament id must be greater than zero", ErrInvalidInput)
	}
	if s.fetcher == nil {
		return ImportResult{}, fmt.Errorf("%w: standings fetcher is not configured", ErrDependencyUnavailable)
	}

	page, err := s.fetcher.FetchStandingsPage(ctx, tournamentID)
	if err != nil {
		recordSpanError(span, err)
		return ImportResult{}, fmt.Errorf("%w: tournament_id=%d: %w", ErrFetchFailed, tournamentID, err)
	}

	teams := wmfl.ParseStandings(page)
	if teams == nil {
		teams = []wmfl.TeamStanding{}
	}
	result := ImportResult{
		Success:         true,
		TotalTeams:      len(teams),
		TournamentID:    tournamentID,
		TournamentTitle: wmfl.ParseTournamentTitle(page),
		Teams:           teams,
	}
	if len(teams) == 0 {
		result.NotFound = true
		result.Message = importNotFoundMessage
		s.logger.InfoContext(ctx, "no standings rows found", "tournament_id", tournamentID)
		return result, nil
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		recordSpanError(span, err)
		return ImportResult{}, err
	}
	defer closeSession(ctx, s.logger, session)

	repo := session.Teams()
	for _, standing := range teams {
		team := teamFromStanding(standing, tournamentID, s.cfg.Season)
		if err := team.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip invalid standings row", "tournament_id", tournamentID, "team_name", standing.TeamName, "error", err)
			continue
		}
		if err := repo.UpsertStanding(ctx, team); err != nil {
			s.logger.WarnContext(ctx, "import team failed, skipping", "tournament_id", tournamentID, "team_name", standing.TeamName, "team_id", team.TeamID, "error", err)
			continue
		}
		result.ImportedCount++
	}

	result.Message = fmt.Sprintf("imported teams: %d", result.ImportedCount)
	s.logger.InfoContext(ctx, "standings imported",
		"tournament_id", tournamentID,
		"imported_count", result.ImportedCount,
		"total_teams", result.TotalTeams,
	)
	return result, nil
}

func teamFromStanding(standing wmfl.TeamStanding, tournamentID int64, season string) tournamentteam.Team {
	points := wmfl.ValueOr(standing.Points, 0)
	goalsFor := wmfl.ValueOr(standing.GoalsFor, 0)
	goalsAgainst := wmfl.ValueOr(standing.GoalsAgainst, 0)

	// A rank of 0 is not a table position; it is stored as NULL like an absent one.
	var position *int
	if standing.Position != nil && *standing.Position > 0 {
		value := *standing.Position
		position = &value
	}

	return tournamentteam.Team{
		TeamID:         tournamentteam.DeriveTeamID(standing.TeamName),
		TeamName:       standing.TeamName,
		MatchesPlayed:  wmfl.ValueOr(standing.Games, 0),
		Wins:           wmfl.ValueOr(standing.Wins, 0),
		Draws:          wmfl.ValueOr(standing.Draws, 0),
		Losses:         wmfl.ValueOr(standing.Losses, 0),
		GoalsFor:       goalsFor,
		GoalsAgainst:   goalsAgainst,
		GoalDifference: goalsFor - goalsAgainst,
		Points:         points,
		Rating:         tournamentteam.ImportRating(points),
		Position:       position,
		TournamentID:   tournamentID,
		Season:         season,
		IsActive:       true,
	}
}
