package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/state"
)

const (
	defaultEmotionPoll  = 500 * time.Millisecond
	defaultRefreshEvery = 30 * time.Second
)

// Source is the part of the server API the poller reads from.
//
//go:generate mockgen -destination=mocks/source_mock.go -package=mocks github.com/five82/cadence/internal/app Source
type Source interface {
	FetchRecommendations(ctx context.Context) (moodapi.Recommendation, error)
	FetchEmotion(ctx context.Context) (string, error)
}

// Poller keeps state.Store in step with the server: it watches the detected
// emotion and re-fetches recommendations whenever it changes, plus on a slow
// periodic cadence.
type Poller struct {
	source       Source
	store        *state.Store
	logger       *zap.Logger
	emotionEvery time.Duration
	refreshEvery time.Duration

	wg sync.WaitGroup
}

// NewPoller builds a Poller. Non-positive intervals use the defaults.
func NewPoller(source Source, store *state.Store, logger *zap.Logger, emotionEvery, refreshEvery time.Duration) *Poller {
	if emotionEvery <= 0 {
		emotionEvery = defaultEmotionPoll
	}
	if refreshEvery <= 0 {
		refreshEvery = defaultRefreshEvery
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		source:       source,
		store:        store,
		logger:       logger,
		emotionEvery: emotionEvery,
		refreshEvery: refreshEvery,
	}
}

// Refresh fetches recommendations and hands the outcome to the store. An
// unforced refresh is a no-op while another fetch is outstanding.
func (p *Poller) Refresh(ctx context.Context, force bool) {
	gen, ok := p.store.BeginRefresh(force)
	if !ok {
		p.logger.Debug("refresh skipped; update in progress")
		return
	}

	rec, err := p.source.FetchRecommendations(ctx)
	message := ""
	if err != nil {
		message = refreshFailureMessage(err)
		p.logger.Warn("recommendation fetch failed", zap.Error(err), zap.Bool("force", force))
	}
	if !p.store.CompleteRefresh(gen, rec, err, message) {
		p.logger.Debug("discarded stale recommendations", zap.Uint64("generation", gen))
	}
}

// PollEmotion fetches the detected emotion and forces a refresh when it
// changed. Failures are logged and otherwise ignored.
func (p *Poller) PollEmotion(ctx context.Context) {
	label, err := p.source.FetchEmotion(ctx)
	if err != nil {
		p.logger.Warn("emotion poll failed", zap.Error(err))
		return
	}
	if !p.store.ObserveEmotion(label) {
		return
	}
	p.logger.Info("emotion changed", zap.String("emotion", moodapi.NormalizeEmotion(label)))
	p.Refresh(ctx, true)
}

// Run performs an initial forced refresh and then polls until ctx is done.
// Every tick runs on its own goroutine so a slow response never holds up the
// next one; the store's updating flag keeps periodic refreshes from piling
// up. Run waits for those goroutines before returning.
func (p *Poller) Run(ctx context.Context) {
	defer p.wg.Wait()

	p.Refresh(ctx, true)

	emotionTicker := time.NewTicker(p.emotionEvery)
	defer emotionTicker.Stop()
	refreshTicker := time.NewTicker(p.refreshEvery)
	defer refreshTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-emotionTicker.C:
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				p.PollEmotion(ctx)
			}()
		case <-refreshTicker.C:
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				p.Refresh(ctx, false)
			}()
		}
	}
}

// Start launches Run in the background and returns a function that cancels
// it and waits for it to finish.
func (p *Poller) Start(ctx context.Context) (stop func()) {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(runCtx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func refreshFailureMessage(err error) string {
	if moodapi.IsAPIError(err) {
		return moodapi.Message(err, "No recommendations available")
	}
	return "Failed to get recommendations"
}
