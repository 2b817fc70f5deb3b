package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"
	tournamentteammock "github.com/riskibarqy/wmfl-standings/internal/mocks/domain/tournamentteam"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTeamServiceForTest(provider *stubSessionProvider) *TeamService {
	return NewTeamService(provider, TeamDefaults{TournamentID: 1056456, Season: "2024/2025"}, logging.NewNop())
}

func TestTeamService_Create_AppliesDefaults(t *testing.T) {
	t.Parallel()

	teams := tournamentteammock.NewRepository(t)
	provider := &stubSessionProvider{teams: teams}

	teams.On("Insert", mock.Anything, mock.MatchedBy(func(team tournamentteam.Team) bool {
		return team.TeamName == "Ротор" &&
			team.TeamID == tournamentteam.DeriveTeamID("Ротор") &&
			team.Rating == 1500 &&
			team.TournamentID == 1056456 &&
			team.Season == "2024/2025" &&
			team.IsActive &&
			team.Points == 7 &&
			team.GoalDifference == 3
	})).Return(tournamentteam.Team{ID: 1, TeamID: 5, TeamName: "Ротор"}, nil).Once()

	created, err := newTeamServiceForTest(provider).Create(context.Background(), CreateTeamInput{
		TeamName:     "  Ротор ",
		Wins:         2,
		Draws:        1,
		GoalsFor:     5,
		GoalsAgainst: 2,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	requireSessionsBalanced(t, provider)
}

func TestTeamService_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CreateTeamInput
	}{
		{name: "missing name", input: CreateTeamInput{}},
		{name: "blank name", input: CreateTeamInput{TeamName: "   "}},
		{name: "negative wins", input: CreateTeamInput{TeamName: "Team", Wins: -1}},
		{name: "negative team id", input: CreateTeamInput{TeamName: "Team", TeamID: func() *int64 { v := int64(-5); return &v }()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubSessionProvider{}
			_, err := newTeamServiceForTest(provider).Create(context.Background(), tt.input)
			require.ErrorIs(t, err, ErrInvalidInput)

			opened, _ := provider.counts()
			require.Zero(t, opened)
		})
	}
}

func TestTeamService_Create_DuplicateTeamID(t *testing.T) {
	t.Parallel()

	teams := tournamentteammock.NewRepository(t)
	teams.On("Insert", mock.Anything, mock.Anything).Return(tournamentteam.Team{}, tournamentteam.ErrDuplicateTeamID).Once()

	_, err := newTeamServiceForTest(&stubSessionProvider{teams: teams}).Create(context.Background(), CreateTeamInput{TeamName: "Team"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_Get(t *testing.T) {
	t.Parallel()

	teams := tournamentteammock.NewRepository(t)
	teams.On("GetActiveByTeamID", mock.Anything, int64(7)).Return(tournamentteam.Team{TeamID: 7, TeamName: "Team"}, true, nil).Once()
	teams.On("GetActiveByTeamID", mock.Anything, int64(8)).Return(tournamentteam.Team{}, false, nil).Once()
	service := newTeamServiceForTest(&stubSessionProvider{teams: teams})

	got, err := service.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Team", got.TeamName)

	_, err = service.Get(context.Background(), 8)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_List_PassesTournamentFilter(t *testing.T) {
	t.Parallel()

	teams := tournamentteammock.NewRepository(t)
	teams.On("ListActive", mock.Anything, tournamentteam.ListFilter{TournamentID: 3}).Return([]tournamentteam.Team{{TeamID: 1}}, nil).Once()

	got, err := newTeamServiceForTest(&stubSessionProvider{teams: teams}).List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = newTeamServiceForTest(&stubSessionProvider{}).List(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_Update(t *testing.T) {
	t.Parallel()

	service := newTeamServiceForTest(&stubSessionProvider{})
	_, err := service.Update(context.Background(), 7, tournamentteam.Patch{})
	require.ErrorIs(t, err, ErrInvalidInput)

	blank := "  "
	_, err = service.Update(context.Background(), 7, tournamentteam.Patch{TeamName: &blank})
	require.ErrorIs(t, err, ErrInvalidInput)

	teams := tournamentteammock.NewRepository(t)
	city := "Казань"
	teams.On("Update", mock.Anything, int64(7), tournamentteam.Patch{City: &city}).Return(tournamentteam.Team{TeamID: 7, City: city}, true, nil).Once()
	teams.On("Update", mock.Anything, int64(8), tournamentteam.Patch{City: &city}).Return(tournamentteam.Team{}, false, nil).Once()
	service = newTeamServiceForTest(&stubSessionProvider{teams: teams})

	updated, err := service.Update(context.Background(), 7, tournamentteam.Patch{City: &city})
	require.NoError(t, err)
	require.Equal(t, city, updated.City)

	_, err = service.Update(context.Background(), 8, tournamentteam.Patch{City: &city})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_Delete(t *testing.T) {
	t.Parallel()

	teams := tournamentteammock.NewRepository(t)
	teams.On("Deactivate", mock.Anything, int64(7)).Return(tournamentteam.Team{TeamID: 7, IsActive: false}, true, nil).Once()
	teams.On("Deactivate", mock.Anything, int64(8)).Return(tournamentteam.Team{}, false, nil).Once()
	provider := &stubSessionProvider{teams: teams}
	service := newTeamServiceForTest(provider)

	deleted, err := service.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.False(t, deleted.IsActive)

	_, err = service.Delete(context.Background(), 8)
	require.ErrorIs(t, err, ErrNotFound)
	requireSessionsBalanced(t, provider)
}
