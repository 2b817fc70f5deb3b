package synclog

import (
	"context"
	"time"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry records the outcome of one tournament synchronization run.
type Entry struct {
	ID           int64
	TournamentID int64
	Status       Status
	Message      string
	TeamsUpdated int
	SyncTime     time.Time
}

// Repository is append-only.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	ListLatest(ctx context.Context, limit int) ([]Entry, error)
}
