// Package recent keeps the short, client-local list of recently played
// tracks shown at the top of the side panel. Nothing here is persisted.
package recent

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/cadence/internal/moodapi"
)

// MaxEntries is the number of tracks retained.
const MaxEntries = 5

// Entry is a played track and when it was played.
type Entry struct {
	Track    moodapi.Track
	PlayedAt time.Time
}

// Ring is a most-recent-first list of at most MaxEntries tracks, unique by
// track id. It is safe for concurrent use.
type Ring struct {
	mu      sync.RWMutex
	entries []Entry
}

// Record moves track to the front stamped with at, dropping any older entry
// for the same id and anything beyond MaxEntries.
func (r *Ring) Record(track moodapi.Track, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Entry, 0, MaxEntries)
	next = append(next, Entry{Track: track, PlayedAt: at})
	for _, e := range r.entries {
		if e.Track.ID == track.ID {
			continue
		}
		if len(next) == MaxEntries {
			break
		}
		next = append(next, e)
	}
	r.entries = next
}

// Entries returns a copy of the list, most recent first.
func (r *Ring) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// RelativeTime formats the age of then as seen from now using floor
// division: "Just now" under a minute, then whole minutes, hours or days.
func RelativeTime(now, then time.Time) string {
	secs := int64(now.Sub(then) / time.Second)
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}
