package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
)

// TeamRepository keeps tournament teams keyed by team_id, mirroring the unique
// constraint of the postgres table.
type TeamRepository struct {
	mu     sync.RWMutex
	rows   map[int64]tournamentteam.Team
	nextID int64
	now    func() time.Time
}

func NewTeamRepository(teams []tournamentteam.Team) *TeamRepository {
	r := &TeamRepository{
		rows: make(map[int64]tournamentteam.Team, len(teams)),
		now:  time.Now,
	}
	for _, item := range teams {
		r.insertLocked(item)
	}
	return r
}

// WithClock replaces the timestamp source used for created_at and updated_at.
func (r *TeamRepository) WithClock(now func() time.Time) *TeamRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	if now != nil {
		r.now = now
	}
	return r
}

func (r *TeamRepository) ListActive(_ context.Context, filter tournamentteam.ListFilter) ([]tournamentteam.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournamentteam.Team, 0, len(r.rows))
	for _, item := range r.rows {
		if !item.IsActive {
			continue
		}
		if filter.TournamentID > 0 && item.TournamentID != filter.TournamentID {
			continue
		}
		out = append(out, cloneTeam(item))
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamID < b.TeamID
	})
	return out, nil
}

func (r *TeamRepository) GetActiveByTeamID(_ context.Context, teamID int64) (tournamentteam.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[teamID]
	if !ok || !item.IsActive {
		return tournamentteam.Team{}, false, nil
	}
	return cloneTeam(item), true, nil
}

func (r *TeamRepository) ListActiveTournamentIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, item := range r.rows {
		if !item.IsActive {
			continue
		}
		if _, ok := seen[item.TournamentID]; ok {
			continue
		}
		seen[item.TournamentID] = struct{}{}
		out = append(out, item.TournamentID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *TeamRepository) Insert(_ context.Context, team tournamentteam.Team) (tournamentteam.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[team.TeamID]; exists {
		return tournamentteam.Team{}, tournamentteam.ErrDuplicateTeamID
	}
	return cloneTeam(r.insertLocked(team)), nil
}

func (r *TeamRepository) UpsertStanding(_ context.Context, team tournamentteam.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[team.TeamID]
	if !ok {
		r.insertLocked(team)
		return nil
	}

	existing.TeamName = team.TeamName
	existing.MatchesPlayed = team.MatchesPlayed
	existing.Wins = team.Wins
	existing.Draws = team.Draws
	existing.Losses = team.Losses
	existing.GoalsFor = team.GoalsFor
	existing.GoalsAgainst = team.GoalsAgainst
	existing.GoalDifference = team.GoalsFor - team.GoalsAgainst
	existing.Points = team.Points
	existing.Rating = team.Rating
	existing.Position = copyInt(team.Position)
	existing.UpdatedAt = r.now().UTC()
	r.rows[team.TeamID] = existing
	return nil
}

func (r *TeamRepository) Update(_ context.Context, teamID int64, patch tournamentteam.Patch) (tournamentteam.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[teamID]
	if !ok {
		return tournamentteam.Team{}, false, nil
	}
	patch.Apply(&existing)
	existing.UpdatedAt = r.now().UTC()
	r.rows[teamID] = existing
	return cloneTeam(existing), true, nil
}

func (r *TeamRepository) Deactivate(_ context.Context, teamID int64) (tournamentteam.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[teamID]
	if !ok {
		return tournamentteam.Team{}, false, nil
	}
	existing.IsActive = false
	existing.UpdatedAt = r.now().UTC()
	r.rows[teamID] = existing
	return cloneTeam(existing), true, nil
}

func (r *TeamRepository) UpdateStanding(_ context.Context, update tournamentteam.StandingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[update.TeamID]
	if !ok || existing.TournamentID != update.TournamentID {
		return nil
	}
	position := update.Position
	existing.Position = &position
	existing.Points = update.Points
	existing.UpdatedAt = r.now().UTC()
	r.rows[update.TeamID] = existing
	return nil
}

func (r *TeamRepository) insertLocked(team tournamentteam.Team) tournamentteam.Team {
	r.nextID++
	now := r.now().UTC()
	team.ID = r.nextID
	team.GoalDifference = team.GoalsFor - team.GoalsAgainst
	team.Position = copyInt(team.Position)
	if team.CreatedAt.IsZero() {
		team.CreatedAt = now
	}
	team.UpdatedAt = now
	r.rows[team.TeamID] = team
	return team
}

func cloneTeam(team tournamentteam.Team) tournamentteam.Team {
	team.Position = copyInt(team.Position)
	return team
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
