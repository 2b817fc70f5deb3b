package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	qb "github.com/riskibarqy/wmfl-standings/internal/platform/querybuilder"
)

// standingUpsertConflict overwrites scraped table columns of an existing team.
// Descriptive columns, tournament and season stay as they are.
const standingUpsertConflict = `(team_id) DO UPDATE SET
    team_name = EXCLUDED.team_name,
    matches_played = EXCLUDED.matches_played,
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    points = EXCLUDED.points,
    rating = EXCLUDED.rating,
    position = EXCLUDED.position,
    updated_at = NOW()`

var standingsOrder = []string{"points DESC", "goal_difference DESC", "goals_for DESC", "team_id"}

type TeamRepository struct {
	db queryer
}

func NewTeamRepository(db queryer) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListActive(ctx context.Context, filter tournamentteam.ListFilter) ([]tournamentteam.Team, error) {
	query, args, err := listActiveTeamsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list active teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active teams: %w", err)
	}

	out := make([]tournamentteam.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetActiveByTeamID(ctx context.Context, teamID int64) (tournamentteam.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From(tournamentTeamsTable).
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return tournamentteam.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	return r.getOne(ctx, query, args, "get team")
}

func (r *TeamRepository) ListActiveTournamentIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("tournament_id").From(tournamentTeamsTable).
		Where(qb.Eq("is_active", true)).
		GroupBy("tournament_id").
		OrderBy("tournament_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active tournaments query: %w", err)
	}

	var ids []int64
	if err := sqlx.SelectContext(ctx, r.db, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list active tournaments: %w", err)
	}
	return ids, nil
}

func (r *TeamRepository) Insert(ctx context.Context, team tournamentteam.Team) (tournamentteam.Team, error) {
	builder, err := qb.InsertModel(tournamentTeamsTable, teamRowFromDomain(team))
	if err != nil {
		return tournamentteam.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	query, args, err := builder.Returning(teamColumns...).ToSQL()
	if err != nil {
		return tournamentteam.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return tournamentteam.Team{}, tournamentteam.ErrDuplicateTeamID
		}
		return tournamentteam.Team{}, fmt.Errorf("insert team team_id=%d: %w", team.TeamID, err)
	}
	return row.toDomain(), nil
}

func (r *TeamRepository) UpsertStanding(ctx context.Context, team tournamentteam.Team) error {
	query, args, err := upsertStandingQuery(team)
	if err != nil {
		return fmt.Errorf("build upsert standing query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert standing team_id=%d: %w", team.TeamID, err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, teamID int64, patch tournamentteam.Patch) (tournamentteam.Team, bool, error) {
	query, args, err := updateTeamQuery(teamID, patch)
	if err != nil {
		return tournamentteam.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}
	return r.getOne(ctx, query, args, "update team")
}

func (r *TeamRepository) Deactivate(ctx context.Context, teamID int64) (tournamentteam.Team, bool, error) {
	query, args, err := qb.Update(tournamentTeamsTable).
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("team_id", teamID)).
		Returning(teamColumns...).
		ToSQL()
	if err != nil {
		return tournamentteam.Team{}, false, fmt.Errorf("build deactivate team query: %w", err)
	}
	return r.getOne(ctx, query, args, "deactivate team")
}

func (r *TeamRepository) UpdateStanding(ctx context.Context, update tournamentteam.StandingUpdate) error {
	query, args, err := updateStandingQuery(update)
	if err != nil {
		return fmt.Errorf("build update standing query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update standing team_id=%d: %w", update.TeamID, err)
	}
	return nil
}

func (r *TeamRepository) getOne(ctx context.Context, query string, args []any, op string) (tournamentteam.Team, bool, error) {
	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournamentteam.Team{}, false, nil
		}
		return tournamentteam.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func listActiveTeamsQuery(filter tournamentteam.ListFilter) (string, []any, error) {
	builder := qb.Select(teamColumns...).From(tournamentTeamsTable).
		Where(qb.Eq("is_active", true))
	if filter.TournamentID > 0 {
		builder.Where(qb.Eq("tournament_id", filter.TournamentID))
	}
	return builder.OrderBy(standingsOrder...).ToSQL()
}

func upsertStandingQuery(team tournamentteam.Team) (string, []any, error) {
	builder, err := qb.InsertModel(tournamentTeamsTable, teamRowFromDomain(team))
	if err != nil {
		return "", nil, err
	}
	return builder.OnConflict(standingUpsertConflict).ToSQL()
}

func updateTeamQuery(teamID int64, patch tournamentteam.Patch) (string, []any, error) {
	builder := qb.Update(tournamentTeamsTable)
	for _, a := range patch.Assignments() {
		builder.Set(a.Column, a.Value)
	}
	return builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("team_id", teamID)).
		Returning(teamColumns...).
		ToSQL()
}

func updateStandingQuery(update tournamentteam.StandingUpdate) (string, []any, error) {
	return qb.Update(tournamentTeamsTable).
		Set("position", update.Position).
		Set("points", update.Points).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("team_id", update.TeamID),
			qb.Eq("tournament_id", update.TournamentID),
		).
		ToSQL()
}
