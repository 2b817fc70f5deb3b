package httpapi

import (
	"net/http"

	"github.com/riskibarqy/wmfl-standings/internal/usecase"
)

func (h *Handler) ImportStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportStandings")
	defer span.End()

	var req importRequest
	if err := h.decodeJSON(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.Import(ctx, usecase.ImportInput{TournamentID: req.TournamentID})
	if err != nil {
		h.logger.WarnContext(ctx, "import standings failed", "tournament_id", req.TournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
