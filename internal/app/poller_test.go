package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/five82/cadence/internal/app/mocks"
	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/state"
)

func newTestPoller(t *testing.T) (*Poller, *mocks.MockSource, *state.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	store := &state.Store{}
	return NewPoller(source, store, zap.NewNop(), time.Hour, time.Hour), source, store
}

func TestPollerRefresh_FailureMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server message",
			err:  &moodapi.APIError{Path: "/recommend", Message: "Camera not ready"},
			want: "Camera not ready",
		},
		{
			name: "application failure without message",
			err:  &moodapi.APIError{Path: "/recommend"},
			want: "No recommendations available",
		},
		{
			name: "transport failure",
			err:  errors.New("dial tcp: connection refused"),
			want: "Failed to get recommendations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, source, store := newTestPoller(t)
			source.EXPECT().FetchRecommendations(gomock.Any()).Return(moodapi.Recommendation{}, tt.err)

			p.Refresh(context.Background(), true)

			snap := store.Snapshot()
			if snap.ErrorMessage != tt.want {
				t.Fatalf("ErrorMessage = %q, want %q", snap.ErrorMessage, tt.want)
			}
			if snap.Updating || snap.HasTracks {
				t.Fatalf("snapshot after failure = %#v", snap)
			}
		})
	}
}

func TestPollerRefresh_Success(t *testing.T) {
	p, source, store := newTestPoller(t)
	source.EXPECT().FetchRecommendations(gomock.Any()).Return(moodapi.Recommendation{
		Success:     true,
		Emotion:     "Happy",
		Tracks:      []moodapi.Track{{ID: "a", Name: "A"}},
		PlaylistURL: "https://open.spotify.com/playlist/x",
	}, nil)

	p.Refresh(context.Background(), false)

	snap := store.Snapshot()
	if snap.Emotion != "happy" || !snap.HasTracks || snap.Groups[0][0].ID != "a" {
		t.Fatalf("snapshot = %#v", snap)
	}
	if snap.PlaylistURL == "" {
		t.Fatalf("PlaylistURL not stored")
	}
}

func TestPollerRefresh_UnforcedSkippedWhileUpdating(t *testing.T) {
	p, _, store := newTestPoller(t)

	if _, ok := store.BeginRefresh(true); !ok {
		t.Fatalf("BeginRefresh refused")
	}
	// No FetchRecommendations expectation: gomock fails the test on any call.
	p.Refresh(context.Background(), false)
}

func TestPollerRefresh_ForcedSupersedesInFlight(t *testing.T) {
	p, source, store := newTestPoller(t)

	release := make(chan struct{})
	started := make(chan struct{})
	gomock.InOrder(
		source.EXPECT().FetchRecommendations(gomock.Any()).DoAndReturn(func(context.Context) (moodapi.Recommendation, error) {
			close(started)
			<-release
			return moodapi.Recommendation{Success: true, Emotion: "sad", Tracks: []moodapi.Track{{ID: "old"}}}, nil
		}),
		source.EXPECT().FetchRecommendations(gomock.Any()).Return(
			moodapi.Recommendation{Success: true, Emotion: "happy", Tracks: []moodapi.Track{{ID: "new"}}}, nil),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Refresh(context.Background(), false)
	}()
	<-started

	p.Refresh(context.Background(), true)
	close(release)
	<-done

	snap := store.Snapshot()
	if snap.Emotion != "happy" || snap.Groups[0][0].ID != "new" {
		t.Fatalf("stale response overwrote newer data: %#v", snap.Groups[0][0])
	}
	if snap.Updating {
		t.Fatalf("Updating = true after both fetches resolved")
	}
}

func TestPollerPollEmotion(t *testing.T) {
	p, source, store := newTestPoller(t)

	gomock.InOrder(
		source.EXPECT().FetchEmotion(gomock.Any()).Return("Happy", nil),
		source.EXPECT().FetchRecommendations(gomock.Any()).Return(moodapi.Recommendation{Success: true, Emotion: "happy"}, nil),
		source.EXPECT().FetchEmotion(gomock.Any()).Return("happy", nil),
		source.EXPECT().FetchEmotion(gomock.Any()).Return("", errors.New("timeout")),
		source.EXPECT().FetchEmotion(gomock.Any()).Return("sad", nil),
		source.EXPECT().FetchRecommendations(gomock.Any()).Return(moodapi.Recommendation{Success: true, Emotion: "sad"}, nil),
	)

	ctx := context.Background()
	p.PollEmotion(ctx) // first observation refreshes
	p.PollEmotion(ctx) // same emotion, different case: nothing
	p.PollEmotion(ctx) // error: ignored
	p.PollEmotion(ctx) // change: refresh

	if store.LastEmotion() != "sad" || store.Snapshot().Emotion != "sad" {
		t.Fatalf("emotion = %q/%q, want sad", store.LastEmotion(), store.Snapshot().Emotion)
	}
}

func TestPollerStart_InitialRefreshAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	store := &state.Store{}
	p := NewPoller(source, store, zap.NewNop(), 5*time.Millisecond, time.Hour)

	fetched := make(chan struct{}, 1)
	source.EXPECT().FetchRecommendations(gomock.Any()).DoAndReturn(func(context.Context) (moodapi.Recommendation, error) {
		select {
		case fetched <- struct{}{}:
		default:
		}
		return moodapi.Recommendation{Success: true, Emotion: "neutral"}, nil
	}).MinTimes(1)
	source.EXPECT().FetchEmotion(gomock.Any()).Return("neutral", nil).AnyTimes()

	stop := p.Start(context.Background())
	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		stop()
		t.Fatalf("initial refresh did not happen")
	}
	time.Sleep(20 * time.Millisecond)
	stop()

	if store.Snapshot().Emotion != "neutral" {
		t.Fatalf("Emotion = %q, want neutral", store.Snapshot().Emotion)
	}
}

func TestPollerRun_EmotionPollContinuesDuringSlowRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	store := &state.Store{}
	store.ObserveEmotion("neutral")
	p := NewPoller(source, store, zap.NewNop(), 10*time.Millisecond, 50*time.Millisecond)

	var fetches, polls atomic.Int32
	hung := make(chan struct{})
	source.EXPECT().FetchRecommendations(gomock.Any()).DoAndReturn(func(ctx context.Context) (moodapi.Recommendation, error) {
		switch fetches.Add(1) {
		case 1:
			return moodapi.Recommendation{Success: true, Emotion: "neutral"}, nil
		case 2:
			close(hung)
		}
		select {
		case <-ctx.Done():
		case <-time.After(600 * time.Millisecond):
		}
		return moodapi.Recommendation{}, ctx.Err()
	}).MinTimes(2)
	source.EXPECT().FetchEmotion(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		polls.Add(1)
		return "neutral", nil
	}).AnyTimes()

	stop := p.Start(context.Background())
	defer stop()

	select {
	case <-hung:
	case <-time.After(2 * time.Second):
		t.Fatalf("periodic refresh never started")
	}
	before := polls.Load()
	time.Sleep(200 * time.Millisecond)
	if got := polls.Load() - before; got < 5 {
		t.Fatalf("emotion polls during a slow refresh = %d, want at least 5", got)
	}
	if !store.Updating() {
		t.Fatalf("Updating = false while the periodic refresh is outstanding")
	}
}

func TestNewPoller_Defaults(t *testing.T) {
	p := NewPoller(nil, &state.Store{}, nil, 0, -1)
	if p.emotionEvery != defaultEmotionPoll || p.refreshEvery != defaultRefreshEvery {
		t.Fatalf("intervals = %v/%v", p.emotionEvery, p.refreshEvery)
	}
	if p.logger == nil {
		t.Fatalf("logger is nil")
	}
}
