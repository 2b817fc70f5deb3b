package httpapi

import "net/http"

// RunSync synchronizes one tournament when tournament_id is given, otherwise all of them.
func (h *Handler) RunSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSync")
	defer span.End()

	var req syncRequest
	if err := h.decodeJSON(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.TournamentID > 0 {
		result, err := h.syncService.SyncTournament(ctx, req.TournamentID)
		if err != nil {
			h.logger.WarnContext(ctx, "sync tournament failed", "tournament_id", req.TournamentID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, result)
		return
	}

	result, err := h.syncService.SyncAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "sync all tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ListSyncLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSyncLogs")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.syncService.ListLogs(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list sync logs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]syncLogDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, syncLogToDTO(entry))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
