package state

import (
	"sync"
	"time"

	"github.com/five82/cadence/internal/moodapi"
)

// Snapshot represents the latest recommendation state available to the UI.
type Snapshot struct {
	Emotion             string
	Groups              Groups
	HasTracks           bool
	PlaylistURL         string
	ErrorMessage        string
	Updating            bool
	LastUpdated         time.Time
	ConsecutiveFailures int
}

// IsOffline returns true when refreshes have failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store owns the recommendation state shared by the poller and the UI:
// the displayed grid, the last observed emotion, the updating flag and the
// request generation used to drop stale responses.
type Store struct {
	mu          sync.RWMutex
	snapshot    Snapshot
	lastEmotion string
	seenEmotion bool
	generation  uint64
}

// BeginRefresh claims a recommendation fetch. It refuses when a fetch is
// already outstanding unless force is set. The returned generation must be
// handed back to CompleteRefresh.
func (s *Store) BeginRefresh(force bool) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Updating && !force {
		return 0, false
	}
	s.snapshot.Updating = true
	s.generation++
	return s.generation, true
}

// CompleteRefresh applies the outcome of the fetch identified by gen. Results
// from anything but the most recently issued fetch are discarded and false
// is returned. On failure the grid is cleared and errMessage is shown.
func (s *Store) CompleteRefresh(gen uint64, rec moodapi.Recommendation, err error, errMessage string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}

	s.snapshot.Updating = false
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.ErrorMessage = errMessage
		s.snapshot.Groups = Partition(nil)
		s.snapshot.HasTracks = false
		s.snapshot.PlaylistURL = ""
		s.snapshot.ConsecutiveFailures++
		return true
	}

	s.snapshot.Emotion = moodapi.NormalizeEmotion(rec.Emotion)
	s.snapshot.Groups = Partition(rec.Tracks)
	s.snapshot.HasTracks = !s.snapshot.Groups.Empty()
	s.snapshot.PlaylistURL = rec.PlaylistURL
	s.snapshot.ErrorMessage = ""
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// ObserveEmotion records the latest emotion label and reports whether it
// differs, case-insensitively, from the previously observed one. The first
// observation always counts as a change.
func (s *Store) ObserveEmotion(label string) bool {
	normalized := moodapi.NormalizeEmotion(label)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seenEmotion && s.lastEmotion == normalized {
		return false
	}
	s.lastEmotion = normalized
	s.seenEmotion = true
	return true
}

// LastEmotion returns the last label passed to ObserveEmotion.
func (s *Store) LastEmotion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastEmotion
}

// Updating reports whether a recommendation fetch is outstanding.
func (s *Store) Updating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Updating
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
