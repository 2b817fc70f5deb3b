package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	qb "github.com/riskibarqy/wmfl-standings/internal/platform/querybuilder"
)

type SyncLogRepository struct {
	db queryer
}

func NewSyncLogRepository(db queryer) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

func (r *SyncLogRepository) Append(ctx context.Context, entry synclog.Entry) error {
	query, args, err := appendSyncLogQuery(entry)
	if err != nil {
		return fmt.Errorf("build append sync log query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append sync log tournament_id=%d: %w", entry.TournamentID, err)
	}
	return nil
}

func (r *SyncLogRepository) ListLatest(ctx context.Context, limit int) ([]synclog.Entry, error) {
	query, args, err := qb.Select(syncLogColumns...).From(syncLogTable).
		OrderBy("sync_time DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sync logs query: %w", err)
	}

	var rows []syncLogTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sync logs: %w", err)
	}

	out := make([]synclog.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func appendSyncLogQuery(entry synclog.Entry) (string, []any, error) {
	syncTime := entry.SyncTime
	if syncTime.IsZero() {
		syncTime = time.Now().UTC()
	}
	builder, err := qb.InsertModel(syncLogTable, syncLogTableModel{
		TournamentID: entry.TournamentID,
		Status:       string(entry.Status),
		Message:      entry.Message,
		TeamsUpdated: entry.TeamsUpdated,
		SyncTime:     syncTime,
	})
	if err != nil {
		return "", nil, err
	}
	return builder.ToSQL()
}
