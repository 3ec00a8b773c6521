package manager

import (
	"tunebite/game/types"
)

// MusicManager tracks which background track is playing
type MusicManager struct {
	tracks  []string
	current string
}

func NewMusicManager(tracks []string) *MusicManager {
	t := make([]string, len(tracks))
	copy(t, tracks)
	return &MusicManager{tracks: t}
}

// Current returns the track in use, or "" when none is
func (mm *MusicManager) Current() string {
	return mm.current
}

func (mm *MusicManager) Tracks() []string {
	return mm.tracks
}

// Pick selects any track uniformly
func (mm *MusicManager) Pick(rng types.Rand) string {
	if len(mm.tracks) == 0 {
		return ""
	}
	mm.current = mm.tracks[rng.Intn(len(mm.tracks))]
	return mm.current
}

// Switch selects uniformly among the tracks other than the current one.
// With a single track the current one is kept.
func (mm *MusicManager) Switch(rng types.Rand) string {
	others := make([]string, 0, len(mm.tracks))
	for _, t := range mm.tracks {
		if t != mm.current {
			others = append(others, t)
		}
	}
	if len(others) == 0 {
		return mm.current
	}
	mm.current = others[rng.Intn(len(others))]
	return mm.current
}

// Reset forgets the current track, as when the music is stopped
func (mm *MusicManager) Reset() {
	mm.current = ""
}
