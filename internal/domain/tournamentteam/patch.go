package tournamentteam

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	TeamName      *string
	TeamShortName *string
	TeamLogo      *string
	City          *string
	Stadium       *string
	MatchesPlayed *int
	Wins          *int
	Draws         *int
	Losses        *int
	GoalsFor      *int
	GoalsAgainst  *int
	Rating        *int
	Position      *int
	Form          *string
	Streak        *string
	HomeWins      *int
	HomeDraws     *int
	HomeLosses    *int
	AwayWins      *int
	AwayDraws     *int
	AwayLosses    *int
	YellowCards   *int
	RedCards      *int
	Season        *string
	IsActive      *bool
}

// Assignment is one column write of a patch.
type Assignment struct {
	Column string
	Value  any
}

// Assignments lists the set fields in column order.
func (p Patch) Assignments() []Assignment {
	out := make([]Assignment, 0, 8)
	addString := func(column string, v *string) {
		if v != nil {
			out = append(out, Assignment{Column: column, Value: *v})
		}
	}
	addInt := func(column string, v *int) {
		if v != nil {
			out = append(out, Assignment{Column: column, Value: *v})
		}
	}

	addString("team_name", p.TeamName)
	addString("team_short_name", p.TeamShortName)
	addString("team_logo", p.TeamLogo)
	addString("city", p.City)
	addString("stadium", p.Stadium)
	addInt("matches_played", p.MatchesPlayed)
	addInt("wins", p.Wins)
	addInt("draws", p.Draws)
	addInt("losses", p.Losses)
	addInt("goals_for", p.GoalsFor)
	addInt("goals_against", p.GoalsAgainst)
	addInt("rating", p.Rating)
	addInt("position", p.Position)
	addString("form", p.Form)
	addString("streak", p.Streak)
	addInt("home_wins", p.HomeWins)
	addInt("home_draws", p.HomeDraws)
	addInt("home_losses", p.HomeLosses)
	addInt("away_wins", p.AwayWins)
	addInt("away_draws", p.AwayDraws)
	addInt("away_losses", p.AwayLosses)
	addInt("yellow_cards", p.YellowCards)
	addInt("red_cards", p.RedCards)
	addString("season", p.Season)
	if p.IsActive != nil {
		out = append(out, Assignment{Column: "is_active", Value: *p.IsActive})
	}
	return out
}

func (p Patch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

// Apply copies the set fields onto t and refreshes the derived goal difference.
func (p Patch) Apply(t *Team) {
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}

	setString(&t.TeamName, p.TeamName)
	setString(&t.TeamShortName, p.TeamShortName)
	setString(&t.TeamLogo, p.TeamLogo)
	setString(&t.City, p.City)
	setString(&t.Stadium, p.Stadium)
	setInt(&t.MatchesPlayed, p.MatchesPlayed)
	setInt(&t.Wins, p.Wins)
	setInt(&t.Draws, p.Draws)
	setInt(&t.Losses, p.Losses)
	setInt(&t.GoalsFor, p.GoalsFor)
	setInt(&t.GoalsAgainst, p.GoalsAgainst)
	setInt(&t.Rating, p.Rating)
	if p.Position != nil {
		position := *p.Position
		t.Position = &position
	}
	setString(&t.Form, p.Form)
	setString(&t.Streak, p.Streak)
	setInt(&t.HomeWins, p.HomeWins)
	setInt(&t.HomeDraws, p.HomeDraws)
	setInt(&t.HomeLosses, p.HomeLosses)
	setInt(&t.AwayWins, p.AwayWins)
	setInt(&t.AwayDraws, p.AwayDraws)
	setInt(&t.AwayLosses, p.AwayLosses)
	setInt(&t.YellowCards, p.YellowCards)
	setInt(&t.RedCards, p.RedCards)
	setString(&t.Season, p.Season)
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	t.GoalDifference = t.GoalsFor - t.GoalsAgainst
}
