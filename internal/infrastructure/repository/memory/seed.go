package memory

import "github.com/riskibarqy/wmfl-standings/internal/domain/tournamentteam"

// SeedTeams returns a small demo table for running without a database.
func SeedTeams(tournamentID int64, season string) []tournamentteam.Team {
	rows := []struct {
		name                 string
		short                string
		city                 string
		wins, draws, losses  int
		goalsFor, goalsAgain int
	}{
		{name: "Динамо", short: "DIN", city: "Москва", wins: 9, draws: 2, losses: 1, goalsFor: 31, goalsAgain: 9},
		{name: "Зенит", short: "ZEN", city: "Санкт-Петербург", wins: 8, draws: 3, losses: 1, goalsFor: 25, goalsAgain: 11},
		{name: "Спартак", short: "SPA", city: "Москва", wins: 7, draws: 1, losses: 4, goalsFor: 18, goalsAgain: 15},
		{name: "Локомотив", short: "LOK", city: "Москва", wins: 3, draws: 2, losses: 7, goalsFor: 12, goalsAgain: 22},
	}

	out := make([]tournamentteam.Team, 0, len(rows))
	for _, row := range rows {
		team := tournamentteam.Team{
			TeamID:        tournamentteam.DeriveTeamID(row.name),
			TeamName:      row.name,
			TeamShortName: row.short,
			City:          row.city,
			MatchesPlayed: row.wins + row.draws + row.losses,
			Wins:          row.wins,
			Draws:         row.draws,
			Losses:        row.losses,
			GoalsFor:      row.goalsFor,
			GoalsAgainst:  row.goalsAgain,
			TournamentID:  tournamentID,
			Season:        season,
			IsActive:      true,
		}
		team.Points = team.LeaguePoints()
		team.Rating = tournamentteam.ImportRating(team.Points)
		out = append(out, team)
	}
	return out
}
