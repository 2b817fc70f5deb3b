package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
)

type SyncLogRepository struct {
	mu      sync.RWMutex
	entries []synclog.Entry
}

func NewSyncLogRepository() *SyncLogRepository {
	return &SyncLogRepository{}
}

func (r *SyncLogRepository) Append(_ context.Context, entry synclog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, entry)
	return nil
}

func (r *SyncLogRepository) ListLatest(_ context.Context, limit int) ([]synclog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]synclog.Entry, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SyncTime.Equal(out[j].SyncTime) {
			return out[i].SyncTime.After(out[j].SyncTime)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
