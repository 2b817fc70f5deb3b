package memory

import (
	"context"
	"sync/atomic"

	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/usecase"
)

// SessionProvider hands out sessions over one shared in-process store.
type SessionProvider struct {
	teams    *TeamRepository
	syncLogs *SyncLogRepository
	open     atomic.Int64
}

func NewSessionProvider(teams *TeamRepository, syncLogs *SyncLogRepository) *SessionProvider {
	if teams == nil {
		teams = NewTeamRepository(nil)
	}
	if syncLogs == nil {
		syncLogs = NewSyncLogRepository()
	}
	return &SessionProvider{teams: teams, syncLogs: syncLogs}
}

func (p *SessionProvider) Open(ctx context.Context) (usecase.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.open.Add(1)
	return &session{provider: p}, nil
}

// OpenSessions reports sessions not yet closed.
func (p *SessionProvider) OpenSessions() int64 {
	return p.open.Load()
}

type session struct {
	provider *SessionProvider
	closed   atomic.Bool
}

func (s *session) Teams() tournamentteam.Repository {
	return s.provider.teams
}

func (s *session) SyncLogs() synclog.Repository {
	return s.provider.syncLogs
}

func (s *session) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.provider.open.Add(-1)
	}
	return nil
}
