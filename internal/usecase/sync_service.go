package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

const (
	syncStatusSuccess = "success"

	defaultSyncLogLimit = 50
	maxSyncLogLimit     = 500
)

type SyncConfig struct {
	// MaxWorkers bounds concurrent tournaments in SyncAll. One keeps runs sequential.
	MaxWorkers int
	LogLimit   int
}

type TournamentSyncResult struct {
	TournamentID int64  `json:"tournament_id"`
	TeamsCount   int    `json:"teams_count"`
	TeamsUpdated int    `json:"teams_updated"`
	Status       string `json:"status"`
}

type TournamentSyncFailure struct {
	TournamentID int64  `json:"tournament_id"`
	Error        string `json:"error"`
}

type SyncAllResult struct {
	Success     bool                    `json:"success"`
	Message     string                  `json:"message"`
	SyncedCount int                     `json:"synced_count"`
	FailedCount int                     `json:"failed_count"`
	WorkerCount int                     `json:"worker_count"`
	Results     []TournamentSyncResult  `json:"results"`
	Failures    []TournamentSyncFailure `json:"failures,omitempty"`
}

type SyncService struct {
	sessions SessionProvider
	cfg      SyncConfig
	logger   *logging.Logger
	now      func() time.Time
}

func NewSyncService(sessions SessionProvider, cfg SyncConfig, logger *logging.Logger) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 1
	}
	if cfg.LogLimit < 1 {
		cfg.LogLimit = defaultSyncLogLimit
	}
	return &SyncService{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// SyncTournament recomputes rank and points of one tournament and records the run.
func (s *SyncService) SyncTournament(ctx context.Context, tournamentID int64) (TournamentSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTournament", tournamentAttr(tournamentID))
	defer span.End()

	if tournamentID <= 0 {
		return TournamentSyncResult{}, fmt.Errorf("%w: tournament id must be greater than zero", ErrInvalidInput)
	}

	result, err := s.syncAndRecord(ctx, tournamentID, func(updated int) string {
		return fmt.Sprintf("synced teams: %d", updated)
	})
	if err != nil {
		recordSpanError(span, err)
		return TournamentSyncResult{}, err
	}
	return result, nil
}

// SyncAll synchronizes every tournament that has active teams. A failing
// tournament is recorded and never stops the others.
func (s *SyncService) SyncAll(ctx context.Context) (SyncAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll")
	defer span.End()

	tournamentIDs, err := s.listTournaments(ctx)
	if err != nil {
		recordSpanError(span, err)
		return SyncAllResult{}, err
	}

	result := SyncAllResult{
		Success: true,
		Results: make([]TournamentSyncResult, 0, len(tournamentIDs)),
	}
	if len(tournamentIDs) == 0 {
		result.Message = "no tournaments to synchronize"
		return result, nil
	}

	workerCount := s.cfg.MaxWorkers
	if workerCount > len(tournamentIDs) {
		workerCount = len(tournamentIDs)
	}
	result.WorkerCount = workerCount

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncAllResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	type outcome struct {
		result TournamentSyncResult
		err    error
	}
	outcomes := make([]outcome, len(tournamentIDs))

	var workers sync.WaitGroup
	for i, tournamentID := range tournamentIDs {
		i, tournamentID := i, tournamentID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			row, err := s.syncAndRecord(ctx, tournamentID, func(updated int) string {
				return fmt.Sprintf("auto sync: updated %d teams", updated)
			})
			outcomes[i] = outcome{result: row, err: err}
		}); err != nil {
			workers.Done()
			outcomes[i] = outcome{err: fmt.Errorf("submit sync task: %w", err)}
		}
	}
	workers.Wait()

	for i, item := range outcomes {
		if item.err != nil {
			result.Failures = append(result.Failures, TournamentSyncFailure{
				TournamentID: tournamentIDs[i],
				Error:        item.err.Error(),
			})
			continue
		}
		result.Results = append(result.Results, item.result)
	}
	result.SyncedCount = len(result.Results)
	result.FailedCount = len(result.Failures)
	result.Message = fmt.Sprintf("synchronized tournaments: %d", result.SyncedCount)

	s.logger.InfoContext(ctx, "tournament sync finished",
		"synced_count", result.SyncedCount,
		"failed_count", result.FailedCount,
		"worker_count", workerCount,
	)
	return result, nil
}

// ListLogs returns the latest sync log entries, newest first.
func (s *SyncService) ListLogs(ctx context.Context, limit int) ([]synclog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.ListLogs")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = s.cfg.LogLimit
	}
	if limit > maxSyncLogLimit {
		limit = maxSyncLogLimit
	}

	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	defer closeSession(ctx, s.logger, session)

	entries, err := session.SyncLogs().ListLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync logs: %w", err)
	}
	return entries, nil
}

func (s *SyncService) listTournaments(ctx context.Context) ([]int64, error) {
	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return nil, err
	}
	defer closeSession(ctx, s.logger, session)

	ids, err := session.Teams().ListActiveTournamentIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active tournaments: %w", err)
	}
	return ids, nil
}

// syncAndRecord runs one tournament sync inside its own session and appends
// the outcome to the sync log. Panics are reported as errors.
func (s *SyncService) syncAndRecord(ctx context.Context, tournamentID int64, successMessage func(updated int) string) (TournamentSyncResult, error) {
	session, err := openSession(ctx, s.sessions)
	if err != nil {
		return TournamentSyncResult{}, err
	}
	defer closeSession(ctx, s.logger, session)

	var (
		result  TournamentSyncResult
		syncErr error
		catcher panics.Catcher
	)
	catcher.Try(func() {
		result, syncErr = recomputeStandings(ctx, session.Teams(), tournamentID)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		syncErr = fmt.Errorf("sync tournament_id=%d panicked: %w", tournamentID, recovered.AsError())
	}

	entry := synclog.Entry{
		TournamentID: tournamentID,
		SyncTime:     s.now().UTC(),
	}
	if syncErr != nil {
		entry.Status = synclog.StatusError
		entry.Message = syncErr.Error()
		s.logger.WarnContext(ctx, "tournament sync failed", "tournament_id", tournamentID, "error", syncErr)
	} else {
		entry.Status = synclog.StatusSuccess
		entry.Message = successMessage(result.TeamsUpdated)
		entry.TeamsUpdated = result.TeamsUpdated
	}
	if err := session.SyncLogs().Append(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "append sync log failed", "tournament_id", tournamentID, "error", err)
	}

	return result, syncErr
}

// recomputeStandings derives 3-1-0 points, ranks active teams by them then
// goal difference, and writes back rank and points for rows whose values
// changed. A second run over unchanged stats writes nothing.
func recomputeStandings(ctx context.Context, repo tournamentteam.Repository, tournamentID int64) (TournamentSyncResult, error) {
	teams, err := repo.ListActive(ctx, tournamentteam.ListFilter{TournamentID: tournamentID})
	if err != nil {
		return TournamentSyncResult{}, fmt.Errorf("list active teams tournament_id=%d: %w", tournamentID, err)
	}
	rankByLeaguePoints(teams)

	updated := 0
	for idx, team := range teams {
		position := idx + 1
		points := team.LeaguePoints()
		if team.Position != nil && *team.Position == position && team.Points == points {
			continue
		}

		if err := repo.UpdateStanding(ctx, tournamentteam.StandingUpdate{
			TournamentID: tournamentID,
			TeamID:       team.TeamID,
			Position:     position,
			Points:       points,
		}); err != nil {
			return TournamentSyncResult{}, fmt.Errorf("update standing team_id=%d: %w", team.TeamID, err)
		}
		updated++
	}

	return TournamentSyncResult{
		TournamentID: tournamentID,
		TeamsCount:   len(teams),
		TeamsUpdated: updated,
		Status:       syncStatusSuccess,
	}, nil
}

// rankByLeaguePoints orders teams by derived points, goal difference,
// goals scored and team id, matching the storage ordering once points are written.
func rankByLeaguePoints(teams []tournamentteam.Team) {
	slices.SortStableFunc(teams, func(a, b tournamentteam.Team) int {
		if c := cmp.Compare(b.LeaguePoints(), a.LeaguePoints()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalsFor-b.GoalsAgainst, a.GoalsFor-a.GoalsAgainst); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})
}
