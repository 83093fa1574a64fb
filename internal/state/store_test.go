package state

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/five82/cadence/internal/moodapi"
)

func tracks(n int) []moodapi.Track {
	out := make([]moodapi.Track, n)
	for i := range out {
		out[i] = moodapi.Track{ID: fmt.Sprintf("t%d", i), Name: fmt.Sprintf("Track %d", i)}
	}
	return out
}

func TestPartition_AlwaysThreeGroupsOfFour(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 8, 11, 12, 13, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			groups := Partition(tracks(n))
			real := 0
			for g := 0; g < GroupCount; g++ {
				for slot := 0; slot < GroupSize; slot++ {
					track := groups[g][slot]
					idx := g*GroupSize + slot
					if idx < n {
						if track.ID != fmt.Sprintf("t%d", idx) {
							t.Fatalf("groups[%d][%d].ID = %q, want t%d", g, slot, track.ID, idx)
						}
						real++
						continue
					}
					if !track.Empty {
						t.Fatalf("groups[%d][%d] = %#v, want placeholder", g, slot, track)
					}
					want := fmt.Sprintf("empty-%s-%d", GroupName(g), slot)
					if track.ID != want {
						t.Fatalf("placeholder id = %q, want %q", track.ID, want)
					}
				}
			}
			wantReal := min(n, GroupCount*GroupSize)
			if real != wantReal {
				t.Fatalf("real tracks = %d, want %d", real, wantReal)
			}
			if len(groups.Flatten()) != GroupCount*GroupSize {
				t.Fatalf("Flatten length = %d, want 12", len(groups.Flatten()))
			}
		})
	}
}

func TestGroupsFindAndEmpty(t *testing.T) {
	groups := Partition(tracks(2))
	if groups.Empty() {
		t.Fatalf("Empty() = true with real tracks")
	}
	if _, ok := groups.Find("t1"); !ok {
		t.Fatalf("Find(t1) not found")
	}
	if _, ok := groups.Find("empty-upper-3"); ok {
		t.Fatalf("Find should skip placeholders")
	}
	if !Partition(nil).Empty() {
		t.Fatalf("Partition(nil).Empty() = false")
	}
}

func TestStore_RefreshGuard(t *testing.T) {
	var s Store

	gen1, ok := s.BeginRefresh(false)
	if !ok || !s.Updating() {
		t.Fatalf("first BeginRefresh = %d,%v; want ok and updating", gen1, ok)
	}
	if _, ok := s.BeginRefresh(false); ok {
		t.Fatalf("unforced BeginRefresh while updating should be refused")
	}
	gen2, ok := s.BeginRefresh(true)
	if !ok || gen2 <= gen1 {
		t.Fatalf("forced BeginRefresh = %d,%v; want newer generation", gen2, ok)
	}

	// The older fetch resolving late must not clear the flag or apply data.
	if s.CompleteRefresh(gen1, moodapi.Recommendation{Emotion: "sad", Tracks: tracks(1)}, nil, "") {
		t.Fatalf("stale completion was applied")
	}
	if !s.Updating() {
		t.Fatalf("stale completion cleared the updating flag")
	}
	if s.Snapshot().Emotion == "sad" {
		t.Fatalf("stale completion changed the emotion")
	}

	if !s.CompleteRefresh(gen2, moodapi.Recommendation{Emotion: "Happy", Tracks: tracks(5), PlaylistURL: "u"}, nil, "") {
		t.Fatalf("latest completion was discarded")
	}
	snap := s.Snapshot()
	if snap.Updating {
		t.Fatalf("Updating = true after latest completion")
	}
	if snap.Emotion != "happy" || !snap.HasTracks || snap.PlaylistURL != "u" {
		t.Fatalf("snapshot = %#v", snap)
	}
	if snap.Groups[1][0].ID != "t4" || !snap.Groups[1][1].Empty {
		t.Fatalf("groups not partitioned: %#v", snap.Groups[1])
	}
}

func TestStore_FailureClearsGridAndKeepsInteractive(t *testing.T) {
	var s Store

	gen, _ := s.BeginRefresh(true)
	s.CompleteRefresh(gen, moodapi.Recommendation{Emotion: "happy", Tracks: tracks(4), PlaylistURL: "u"}, nil, "")

	before := time.Now()
	gen, _ = s.BeginRefresh(false)
	s.CompleteRefresh(gen, moodapi.Recommendation{}, errors.New("boom"), "Failed to get recommendations")

	snap := s.Snapshot()
	if snap.Updating {
		t.Fatalf("Updating = true after failure")
	}
	if snap.ErrorMessage != "Failed to get recommendations" {
		t.Fatalf("ErrorMessage = %q", snap.ErrorMessage)
	}
	if snap.HasTracks || snap.PlaylistURL != "" || !snap.Groups.Empty() {
		t.Fatalf("failure should clear grid and playlist: %#v", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	fail := func() {
		gen, _ := s.BeginRefresh(true)
		s.CompleteRefresh(gen, moodapi.Recommendation{}, errors.New("fail"), "x")
	}

	fail()
	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}
	fail()
	if !s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	gen, _ := s.BeginRefresh(true)
	s.CompleteRefresh(gen, moodapi.Recommendation{Emotion: "neutral"}, nil, "")
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("success should reset failures: %#v", snap)
	}
}

func TestStore_ObserveEmotion(t *testing.T) {
	var s Store

	if !s.ObserveEmotion("Happy") {
		t.Fatalf("first observation should report a change")
	}
	if s.ObserveEmotion("HAPPY ") {
		t.Fatalf("case-only difference should not report a change")
	}
	if !s.ObserveEmotion("sad") {
		t.Fatalf("different emotion should report a change")
	}
	if s.LastEmotion() != "sad" {
		t.Fatalf("LastEmotion = %q, want sad", s.LastEmotion())
	}
}
