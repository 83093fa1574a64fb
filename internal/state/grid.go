package state

import (
	"fmt"

	"github.com/five82/cadence/internal/moodapi"
)

// Grid dimensions. The recommendation view always shows exactly
// GroupCount rows of GroupSize cards.
const (
	GroupCount = 3
	GroupSize  = 4
)

// Groups is the fixed recommendation grid.
type Groups [GroupCount][GroupSize]moodapi.Track

var groupNames = [GroupCount]string{"upper", "middle", "lower"}

// GroupName returns the label used for a grid row.
func GroupName(group int) string {
	if group < 0 || group >= GroupCount {
		return ""
	}
	return groupNames[group]
}

// Partition splits tracks into the 3x4 grid. Track i lands in row i/4,
// tracks beyond the twelfth are dropped, and unfilled slots get placeholder
// entries so every row renders four cards.
func Partition(tracks []moodapi.Track) Groups {
	var groups Groups
	for g := 0; g < GroupCount; g++ {
		for slot := 0; slot < GroupSize; slot++ {
			idx := g*GroupSize + slot
			if idx < len(tracks) {
				groups[g][slot] = tracks[idx]
				continue
			}
			groups[g][slot] = Placeholder(g, slot)
		}
	}
	return groups
}

// Placeholder builds the padding entry for an unfilled grid slot.
func Placeholder(group, slot int) moodapi.Track {
	return moodapi.Track{
		ID:    fmt.Sprintf("empty-%s-%d", GroupName(group), slot),
		Name:  "No track available",
		Empty: true,
	}
}

// Flatten returns the grid in row-major order.
func (g Groups) Flatten() []moodapi.Track {
	out := make([]moodapi.Track, 0, GroupCount*GroupSize)
	for _, row := range g {
		out = append(out, row[:]...)
	}
	return out
}

// Find returns the real track with the given id, if present.
func (g Groups) Find(id string) (moodapi.Track, bool) {
	for _, row := range g {
		for _, track := range row {
			if !track.IsPlaceholder() && track.ID == id {
				return track, true
			}
		}
	}
	return moodapi.Track{}, false
}

// Empty reports whether the grid holds no real tracks.
func (g Groups) Empty() bool {
	for _, row := range g {
		for _, track := range row {
			if !track.IsPlaceholder() {
				return false
			}
		}
	}
	return true
}
