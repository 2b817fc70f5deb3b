package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/usecase"
)

// SessionProvider pins one pooled connection per session.
type SessionProvider struct {
	db *sqlx.DB
}

func NewSessionProvider(db *sqlx.DB) *SessionProvider {
	return &SessionProvider{db: db}
}

func (p *SessionProvider) Open(ctx context.Context) (usecase.Session, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire db connection: %w", err)
	}
	return &session{
		conn:     conn,
		teams:    NewTeamRepository(conn),
		syncLogs: NewSyncLogRepository(conn),
	}, nil
}

type session struct {
	conn     *sqlx.Conn
	teams    *TeamRepository
	syncLogs *SyncLogRepository
}

func (s *session) Teams() tournamentteam.Repository {
	return s.teams
}

func (s *session) SyncLogs() synclog.Repository {
	return s.syncLogs
}

func (s *session) Close() error {
	return s.conn.Close()
}
