package tournamentteam

import "hash/fnv"

const teamIDModulo = 1_000_000

// DeriveTeamID maps a team name to a stable id in [0, 999999].
// Equal names always collide into the same row.
func DeriveTeamID(teamName string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(teamName))
	return int64(h.Sum32() % teamIDModulo)
}
