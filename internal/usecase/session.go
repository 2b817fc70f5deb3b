package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
)

// Session is a scoped unit of storage access. Every statement commits on its own,
// so one failed write does not undo the others.
type Session interface {
	Teams() tournamentteam.Repository
	SyncLogs() synclog.Repository
	Close() error
}

// SessionProvider opens a Session per top-level operation.
type SessionProvider interface {
	Open(ctx context.Context) (Session, error)
}

func openSession(ctx context.Context, sessions SessionProvider) (Session, error) {
	if sessions == nil {
		return nil, fmt.Errorf("%w: storage is not configured", ErrDependencyUnavailable)
	}
	session, err := sessions.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: open storage session: %w", ErrDependencyUnavailable, err)
	}
	return session, nil
}

func closeSession(ctx context.Context, logger *logging.Logger, session Session) {
	if err := session.Close(); err != nil {
		logger.WarnContext(ctx, "close storage session failed", "error", err)
	}
}
