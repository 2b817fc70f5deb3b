package wmfl

import (
	"strconv"
	"strings"
)

// fieldRule claims a cell token for one TeamStanding field.
// apply reports whether the rule matched; a matching rule ends evaluation for the token.
type fieldRule struct {
	field string
	apply func(row *TeamStanding, cellIndex int, token string) bool
}

// standingRules is evaluated top to bottom for every non-empty cell token.
// The table has no header awareness: assignment is positional for the first two
// cells and "first unset numeric field" for the rest.
var standingRules = []fieldRule{
	{field: "position", apply: func(row *TeamStanding, cellIndex int, token string) bool {
		if cellIndex != 0 {
			return false
		}
		return setDigits(&row.Position, token)
	}},
	{field: "team_name", apply: func(row *TeamStanding, cellIndex int, token string) bool {
		if cellIndex != 1 {
			return false
		}
		row.TeamName = token
		return true
	}},
	{field: "games", apply: unsetDigits(func(row *TeamStanding) **int { return &row.Games })},
	{field: "wins", apply: unsetDigits(func(row *TeamStanding) **int { return &row.Wins })},
	{field: "draws", apply: unsetDigits(func(row *TeamStanding) **int { return &row.Draws })},
	{field: "losses", apply: unsetDigits(func(row *TeamStanding) **int { return &row.Losses })},
	{field: "goals", apply: func(row *TeamStanding, _ int, token string) bool {
		goalsFor, goalsAgainst, ok := splitScore(token)
		if !ok {
			return false
		}
		// Overwrites on purpose: the score pair is matched on shape alone.
		row.GoalsFor = intPtr(goalsFor)
		row.GoalsAgainst = intPtr(goalsAgainst)
		return true
	}},
	{field: "points", apply: unsetDigits(func(row *TeamStanding) **int { return &row.Points })},
}

// applyStandingRules assigns token to at most one field of row and returns
// the field name, or "" when the token was discarded.
func applyStandingRules(row *TeamStanding, cellIndex int, token string) string {
	for _, rule := range standingRules {
		if rule.apply(row, cellIndex, token) {
			return rule.field
		}
	}
	return ""
}

func unsetDigits(field func(row *TeamStanding) **int) func(*TeamStanding, int, string) bool {
	return func(row *TeamStanding, _ int, token string) bool {
		target := field(row)
		if *target != nil {
			return false
		}
		return setDigits(target, token)
	}
}

func setDigits(target **int, token string) bool {
	value, ok := parseDigits(token)
	if !ok {
		return false
	}
	*target = intPtr(value)
	return true
}

// parseDigits accepts only a non-empty run of ASCII decimal digits.
func parseDigits(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return value, true
}

func splitScore(token string) (int, int, bool) {
	left, right, found := strings.Cut(token, ":")
	if !found || strings.Contains(right, ":") {
		return 0, 0, false
	}
	goalsFor, ok := parseDigits(left)
	if !ok {
		return 0, 0, false
	}
	goalsAgainst, ok := parseDigits(right)
	if !ok {
		return 0, 0, false
	}
	return goalsFor, goalsAgainst, true
}
