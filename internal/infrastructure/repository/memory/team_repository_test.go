package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/wmfl-standings/internal/domain/synclog"
	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
)

func intPtr(v int) *int { return &v }

func TestTeamRepository_UpsertStandingUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(nil)

	first := tournamentteam.Team{TeamID: 77, TeamName: "Team A", Wins: 1, GoalsFor: 3, GoalsAgainst: 1, Points: 3, Rating: 1530, Position: intPtr(2), TournamentID: 10, Season: "2024/2025", IsActive: true}
	if err := repo.UpsertStanding(ctx, first); err != nil {
		t.Fatalf("insert standing: %v", err)
	}

	second := first
	second.TeamName = "Team A Renamed"
	second.Wins = 2
	second.Points = 6
	second.Rating = 1560
	second.Position = nil
	second.TournamentID = 99
	if err := repo.UpsertStanding(ctx, second); err != nil {
		t.Fatalf("update standing: %v", err)
	}

	got, ok, err := repo.GetActiveByTeamID(ctx, 77)
	if err != nil || !ok {
		t.Fatalf("expected stored team, ok=%v err=%v", ok, err)
	}
	if got.ID != 1 {
		t.Fatalf("expected row id to survive upsert, got %d", got.ID)
	}
	if got.TeamName != "Team A Renamed" || got.Wins != 2 || got.Points != 6 || got.Rating != 1560 {
		t.Fatalf("standing fields not overwritten: %+v", got)
	}
	if got.Position != nil {
		t.Fatalf("expected position cleared, got %d", *got.Position)
	}
	if got.TournamentID != 10 {
		t.Fatalf("expected tournament to stay 10, got %d", got.TournamentID)
	}
	if got.GoalDifference != 2 {
		t.Fatalf("expected derived goal difference 2, got %d", got.GoalDifference)
	}
}

func TestTeamRepository_ListActiveOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository([]tournamentteam.Team{
		{TeamID: 1, TeamName: "Low", Points: 3, TournamentID: 10, IsActive: true},
		{TeamID: 2, TeamName: "High GD", Points: 9, GoalsFor: 10, GoalsAgainst: 2, TournamentID: 10, IsActive: true},
		{TeamID: 3, TeamName: "Low GD", Points: 9, GoalsFor: 12, GoalsAgainst: 8, TournamentID: 10, IsActive: true},
		{TeamID: 4, TeamName: "Inactive", Points: 30, TournamentID: 10, IsActive: false},
		{TeamID: 5, TeamName: "Other", Points: 12, TournamentID: 20, IsActive: true},
	})

	teams, err := repo.ListActive(ctx, tournamentteam.ListFilter{TournamentID: 10})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	want := []int64{2, 3, 1}
	if len(teams) != len(want) {
		t.Fatalf("expected %d teams, got %d", len(want), len(teams))
	}
	for i, id := range want {
		if teams[i].TeamID != id {
			t.Fatalf("position %d: expected team %d, got %d", i, id, teams[i].TeamID)
		}
	}

	all, _ := repo.ListActive(ctx, tournamentteam.ListFilter{})
	if len(all) != 4 || all[0].TeamID != 5 {
		t.Fatalf("unexpected unfiltered list: %+v", all)
	}

	ids, _ := repo.ListActiveTournamentIDs(ctx)
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 20 {
		t.Fatalf("unexpected tournament ids: %v", ids)
	}
}

func TestTeamRepository_InsertRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(nil)
	team := tournamentteam.Team{TeamID: 5, TeamName: "Team", TournamentID: 1, IsActive: true}

	created, err := repo.Insert(ctx, team)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps assigned, got %+v", created)
	}
	if _, err := repo.Insert(ctx, team); !errors.Is(err, tournamentteam.ErrDuplicateTeamID) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestTeamRepository_DeactivateAndUpdateStanding(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository([]tournamentteam.Team{
		{TeamID: 5, TeamName: "Team", TournamentID: 1, IsActive: true},
	})

	if err := repo.UpdateStanding(ctx, tournamentteam.StandingUpdate{TournamentID: 2, TeamID: 5, Position: 1, Points: 9}); err != nil {
		t.Fatalf("update standing: %v", err)
	}
	got, _, _ := repo.GetActiveByTeamID(ctx, 5)
	if got.Position != nil || got.Points != 0 {
		t.Fatalf("expected no change for other tournament, got %+v", got)
	}

	if err := repo.UpdateStanding(ctx, tournamentteam.StandingUpdate{TournamentID: 1, TeamID: 5, Position: 1, Points: 9}); err != nil {
		t.Fatalf("update standing: %v", err)
	}
	got, _, _ = repo.GetActiveByTeamID(ctx, 5)
	if got.Position == nil || *got.Position != 1 || got.Points != 9 {
		t.Fatalf("expected standing written, got %+v", got)
	}

	if _, ok, _ := repo.Deactivate(ctx, 5); !ok {
		t.Fatalf("expected deactivate to find the team")
	}
	if _, ok, _ := repo.GetActiveByTeamID(ctx, 5); ok {
		t.Fatalf("expected deactivated team to be hidden")
	}
	if _, ok, _ := repo.Deactivate(ctx, 404); ok {
		t.Fatalf("expected missing team to report not found")
	}
}

func TestSyncLogRepository_ListLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewSyncLogRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, synclog.Entry{TournamentID: int64(i + 1), Status: synclog.StatusSuccess, SyncTime: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := repo.ListLatest(ctx, 2)
	if err != nil {
		t.Fatalf("list latest: %v", err)
	}
	if len(entries) != 2 || entries[0].TournamentID != 3 || entries[1].TournamentID != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestSessionProvider_TracksOpenSessions(t *testing.T) {
	provider := NewSessionProvider(nil, nil)
	session, err := provider.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if provider.OpenSessions() != 1 {
		t.Fatalf("expected one open session")
	}
	_ = session.Close()
	_ = session.Close()
	if provider.OpenSessions() != 0 {
		t.Fatalf("expected session to be closed once, got %d open", provider.OpenSessions())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := provider.Open(ctx); err == nil {
		t.Fatalf("expected cancelled context to fail open")
	}
}
