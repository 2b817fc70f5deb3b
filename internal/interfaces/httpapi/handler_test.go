package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/wmfl-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
	"github.com/riskibarqy/wmfl-standings/internal/usecase"
	"github.com/stretchr/testify/require"
)

const handlerTestPage = `<html><head><meta property="og:title" content="Лига WMFL"></head><body><table>
<tr><th>#</th><th>Команда</th></tr>
<tr class="team-row"><td>2</td><td>Зенит</td><td>12</td><td>8</td><td>3</td><td>1</td><td>25:11</td><td>27</td></tr>
<tr class="team-row"><td>1</td><td>Динамо</td><td>12</td><td>9</td><td>2</td><td>1</td><td>31:9</td><td>29</td></tr>
</table></body></html>`

type stubFetcher struct {
	page string
	err  error
}

func (f *stubFetcher) FetchStandingsPage(_ context.Context, _ int64) (string, error) {
	return f.page, f.err
}

func newTestRouter(t *testing.T, fetcher usecase.StandingsFetcher) (http.Handler, *memory.SessionProvider) {
	t.Helper()

	logger := logging.NewNop()
	provider := memory.NewSessionProvider(memory.NewTeamRepository(nil), memory.NewSyncLogRepository())
	handler := NewHandler(
		usecase.NewImportService(fetcher, provider, usecase.ImportConfig{DefaultTournamentID: 77, Season: "2024/2025"}, logger),
		usecase.NewTeamService(provider, usecase.TeamDefaults{TournamentID: 77, Season: "2024/2025"}, logger),
		usecase.NewSyncService(provider, usecase.SyncConfig{MaxWorkers: 2}, logger),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"}), provider
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	return envelope.Data
}

func TestHandler_Healthz(t *testing.T) {
	router, _ := newTestRouter(t, &stubFetcher{})

	rec := serve(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeData[map[string]string](t, rec)["status"])
}

func TestHandler_ImportThenListTeams(t *testing.T) {
	router, provider := newTestRouter(t, &stubFetcher{page: handlerTestPage})

	rec := serve(t, router, http.MethodPost, "/v1/wmfl/import", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeData[usecase.ImportResult](t, rec)
	require.True(t, result.Success)
	require.Equal(t, 2, result.ImportedCount)
	require.Equal(t, 2, result.TotalTeams)
	require.Equal(t, int64(77), result.TournamentID)
	require.Equal(t, "Лига WMFL", result.TournamentTitle)
	require.Len(t, result.Teams, 2)
	require.Equal(t, "Зенит", result.Teams[0].TeamName)

	rec = serve(t, router, http.MethodGet, "/v1/wmfl/teams?tournament_id=77", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	teams := decodeData[[]teamDTO](t, rec)
	require.Len(t, teams, 2)
	require.Equal(t, "Динамо", teams[0].TeamName)
	require.Equal(t, 29, teams[0].Points)
	require.Equal(t, 22, teams[0].GoalDifference)
	require.Equal(t, 1790, teams[0].Rating)

	rec = serve(t, router, http.MethodPost, "/v1/wmfl/import", `{"tournament_id": 77}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 2, decodeData[usecase.ImportResult](t, rec).ImportedCount)

	rec = serve(t, router, http.MethodGet, "/v1/wmfl/teams?tournament_id=77", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reimported := decodeData[[]teamDTO](t, rec)
	require.Len(t, reimported, 2, "re-import must not add rows")
	for i := range teams {
		require.Equal(t, teams[i].TeamID, reimported[i].TeamID)
		require.Equal(t, teams[i].Points, reimported[i].Points)
	}
	require.Zero(t, provider.OpenSessions())
}

func TestHandler_ImportWithoutRowsIsNotFoundResult(t *testing.T) {
	router, _ := newTestRouter(t, &stubFetcher{page: "<html><body>closed</body></html>"})

	rec := serve(t, router, http.MethodPost, "/v1/wmfl/import", `{"tournament_id": 5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeData[usecase.ImportResult](t, rec)
	require.True(t, result.NotFound)
	require.Zero(t, result.ImportedCount)
	require.Equal(t, int64(5), result.TournamentID)
	require.NotEmpty(t, result.Message)
}

func TestHandler_ImportFetchFailureIsBadGateway(t *testing.T) {
	router, _ := newTestRouter(t, &stubFetcher{err: fmt.Errorf("upstream timed out")})

	rec := serve(t, router, http.MethodPost, "/v1/wmfl/import", `{"tournament_id": 5}`)
	require.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), "fetchFailed")
}

func TestHandler_ImportRejectsBadPayload(t *testing.T) {
	router, _ := newTestRouter(t, &stubFetcher{page: handlerTestPage})

	for name, body := range map[string]string{
		"malformed json":   `{"tournament_id":`,
		"unknown field":    `{"tournament": 5}`,
		"negative id":      `{"tournament_id": -1}`,
		"wrong value type": `{"tournament_id": "5"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, router, http.MethodPost, "/v1/wmfl/import", body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_TeamCRUD(t *testing.T) {
	router, _ := newTestRouter(t, &stubFetcher{})

	rec := serve(t, router, http.MethodPost, "/v1/wmfl/teams", `{"team_id": 501, "team_name": "Торпедо", "wins": 4, "draws": 1, "goals_for": 9, "goals_against": 3}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeData[teamDTO](t, rec)
	require.Equal(t, int64(501), created.TeamID)
	require.Equal(t, 13, created.Points)
	require.Equal(t, 6, created.GoalDifference)
	require.Equal(t, 1500, created.Rating)
	require.Equal(t, int64(77), created.TournamentID)
	require.Equal(t, "2024/2025", created.Season)
	require.True(t, created.IsActive)

	rec = serve(t, router, http.MethodPost, "/v1/wmfl/teams", `{"team_id": 501, "team_name": "Торпедо"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, "duplicate team_id must be rejected")

	rec = serve(t, router, http.MethodPost, "/v1/wmfl/teams", `{"city": "Москва"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, "team_name is required")

	rec = serve(t, router, http.MethodGet, "/v1/wmfl/teams/501", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(t, router, http.MethodPut, "/v1/wmfl/teams/501", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, "empty patch must be rejected")

	rec = serve(t, router, http.MethodPut, "/v1/wmfl/teams/501", `{"points": 99}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, "points are not patchable")

	rec = serve(t, router, http.MethodPut, "/v1/wmfl/teams/501", `{"city": "Москва", "goals_for": 12}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeData[teamDTO](t, rec)
	require.Equal(t, "Москва", updated.City)
	require.Equal(t, 9, updated.GoalDifference)

	rec = serve(t, router, http.MethodPut, "/v1/wmfl/teams/999", `{"city": "Казань"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, http.MethodDelete, "/v1/wmfl/teams/501", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.False(t, decodeData[teamDTO](t, rec).IsActive)

	rec = serve(t, router, http.MethodGet, "/v1/wmfl/teams/501", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, http.MethodGet, "/v1/wmfl/teams/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SyncAndLogs(t *testing.T) {
	router, _ := newTestRouter(t, &stubFetcher{page: handlerTestPage})

	rec := serve(t, router, http.MethodPost, "/v1/wmfl/import", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(t, router, http.MethodPost, "/v1/wmfl/sync", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	all := decodeData[usecase.SyncAllResult](t, rec)
	require.True(t, all.Success)
	require.Equal(t, 1, all.SyncedCount)
	require.Zero(t, all.FailedCount)

	rec = serve(t, router, http.MethodPost, "/v1/wmfl/sync", `{"tournament_id": 77}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	single := decodeData[usecase.TournamentSyncResult](t, rec)
	require.Equal(t, int64(77), single.TournamentID)
	require.Equal(t, 2, single.TeamsCount)
	require.Zero(t, single.TeamsUpdated, "second run without stat changes writes nothing")

	rec = serve(t, router, http.MethodGet, "/v1/wmfl/sync/logs?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	logs := decodeData[[]syncLogDTO](t, rec)
	require.Len(t, logs, 2)
	for _, entry := range logs {
		require.Equal(t, "success", entry.Status)
		require.Equal(t, int64(77), entry.TournamentID)
	}

	for _, limit := range []string{"-1", "abc", "99999999999999999999"} {
		rec = serve(t, router, http.MethodGet, "/v1/wmfl/sync/logs?limit="+limit, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{name: "absent", query: "", want: 0},
		{name: "plain", query: "limit=25", want: 25},
		{name: "padded", query: "limit=%2010%20", want: 10},
		{name: "negative", query: "limit=-5", wantErr: true},
		{name: "not a number", query: "limit=ten", wantErr: true},
		{name: "beyond int64", query: "limit=18446744073709551616", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/wmfl/sync/logs?"+tt.query, nil)
			got, err := queryInt(req, "limit")
			if tt.wantErr {
				require.ErrorIs(t, err, usecase.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_RecoversPanics(t *testing.T) {
	logger := logging.NewNop()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	recoverPanic(logger, mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internalError")
}
