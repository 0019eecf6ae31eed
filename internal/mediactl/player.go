package mediactl

import (
	"slices"
	"strings"
)

const (
	mprisPrefix = "org.mpris.MediaPlayer2."
	mprisPath   = "/org/mpris/MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"
)

// pickPlayer selects the MPRIS bus name to control among the names on the bus.
// Players whose name contains want (case-insensitive) win; otherwise the first
// MPRIS player in name order is used.
func pickPlayer(names []string, want string) (string, error) {
	var players []string
	for _, n := range names {
		if strings.HasPrefix(n, mprisPrefix) {
			players = append(players, n)
		}
	}
	if len(players) == 0 {
		return "", ErrNoPlayer
	}
	slices.Sort(players)

	want = strings.ToLower(strings.TrimSpace(want))
	if want != "" {
		for _, p := range players {
			if strings.Contains(strings.ToLower(strings.TrimPrefix(p, mprisPrefix)), want) {
				return p, nil
			}
		}
	}

	return players[0], nil
}
