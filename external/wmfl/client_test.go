package wmfl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
	"github.com/riskibarqy/wmfl-standings/internal/platform/resilience"
	"golang.org/x/text/encoding/charmap"
)

func newTestClient(t *testing.T, serverURL string, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		URLTemplate:    serverURL + "/tournament/%d/standings",
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_FetchStandingsPage(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(standingsRow("1", "Team A", "1", "1", "0", "0", "2:0", "3")))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, resilience.CircuitBreakerConfig{})
	page, err := client.FetchStandingsPage(context.Background(), 42)
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if gotPath != "/tournament/42/standings" {
		t.Fatalf("unexpected request path: %q", gotPath)
	}
	if gotUA != DefaultUserAgent {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
	if teams := ParseStandings(page); len(teams) != 1 {
		t.Fatalf("expected fetched page to parse into one team, got %d", len(teams))
	}
}

func TestClient_FetchStandingsPageDecodesLegacyCharset(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String(standingsRow("1", "Динамо"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	page, err := newTestClient(t, srv.URL, resilience.CircuitBreakerConfig{}).FetchStandingsPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	teams := ParseStandings(page)
	if len(teams) != 1 || teams[0].TeamName != "Динамо" {
		t.Fatalf("expected decoded cyrillic team name, got %+v", teams)
	}
}

func TestClient_FetchStandingsPageFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(300 * time.Millisecond)
			},
			timeout: 50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(ClientConfig{
				URLTemplate: srv.URL + "/tournament/%d/standings",
				Timeout:     tt.timeout,
				Logger:      logging.NewNop(),
			})
			_, err := client.FetchStandingsPage(context.Background(), 7)
			if !crerr.Is(err, ErrFetchFailed) {
				t.Fatalf("expected ErrFetchFailed, got %v", err)
			}
		})
	}
}

func TestClient_FetchStandingsPageRejectsInvalidTournament(t *testing.T) {
	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if _, err := client.FetchStandingsPage(context.Background(), 0); !crerr.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed for zero tournament id, got %v", err)
	}
}

func TestClient_CircuitBreakerStopsHittingUpstream(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		if _, err := client.FetchStandingsPage(context.Background(), 5); !crerr.Is(err, ErrFetchFailed) {
			t.Fatalf("attempt %d: expected ErrFetchFailed, got %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected upstream to be hit once before the circuit opened, got %d", got)
	}
}

func TestDecodeUTF8_SniffsMetaCharset(t *testing.T) {
	body, err := charmap.Windows1251.NewEncoder().String(`<html><head><meta charset="windows-1251"></head><body>Спартак</body></html>`)
	if err != nil {
		t.Fatalf("encode body: %v", err)
	}
	got, err := decodeUTF8([]byte(body), "text/html")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := "Спартак"; !strings.Contains(got, want) {
		t.Fatalf("expected %q in decoded body, got %q", want, got)
	}
}
