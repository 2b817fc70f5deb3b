package postgres

import (
	"time"

	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	qb "github.com/riskibarqy/wmfl-standings/internal/platform/querybuilder"
)

const syncLogTable = "wmfl_sync_log"

type syncLogTableModel struct {
	ID           int64     `db:"id,readonly"`
	TournamentID int64     `db:"tournament_id"`
	Status       string    `db:"status"`
	Message      string    `db:"message"`
	TeamsUpdated int       `db:"teams_updated"`
	SyncTime     time.Time `db:"sync_time"`
}

var syncLogColumns = qb.ModelColumns(syncLogTableModel{})

func (row syncLogTableModel) toDomain() synclog.Entry {
	return synclog.Entry{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		Status:       synclog.Status(row.Status),
		Message:      row.Message,
		TeamsUpdated: row.TeamsUpdated,
		SyncTime:     row.SyncTime,
	}
}
