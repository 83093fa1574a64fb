package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/five82/cadence/internal/config"
	"github.com/five82/cadence/internal/favorites"
	"github.com/five82/cadence/internal/logging"
	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/player"
	"github.com/five82/cadence/internal/prefs"
	"github.com/five82/cadence/internal/recent"
	"github.com/five82/cadence/internal/state"
	"github.com/five82/cadence/internal/ui"
)

// Options configure the cadence application. Zero values defer to the
// config file.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses ~/.config/cadence/prefs.toml
	ServerURL    string
	EmotionPoll  time.Duration
	RefreshEvery time.Duration
}

// Run boots the cadence TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	var deps uiDeps
	fxApp := fx.New(Module(opts), fx.Populate(&deps.api, &deps.store, &deps.favs, &deps.ring, &deps.player, &deps.poller, &deps.logger, &deps.cfg))
	if err := fxApp.Err(); err != nil {
		return err
	}

	if err := fxApp.Start(ctx); err != nil {
		return fmt.Errorf("start cadence: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fxApp.Stop(stopCtx); err != nil {
			deps.logger.Warn("shutdown failed", zap.Error(err))
		}
		_ = deps.logger.Sync()
	}()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	return ui.Run(ui.Options{
		Context:   ctx,
		API:       deps.api,
		Store:     deps.store,
		Favorites: deps.favs,
		Recent:    deps.ring,
		Player:    deps.player,
		Refresher: deps.poller,
		Logger:    deps.logger.Named("ui"),
		ServerURL: deps.cfg.ServerURL,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

type uiDeps struct {
	api    moodapi.API
	store  *state.Store
	favs   *favorites.Store
	ring   *recent.Ring
	player *player.Player
	poller *Poller
	logger *zap.Logger
	cfg    config.Config
}

// Module wires every long-lived component of cadence.
func Module(opts Options) fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Supply(opts),
		fx.Provide(
			loadConfig,
			newLogger,
			newClient,
			func(c *moodapi.Client) moodapi.API { return c },
			func(c *moodapi.Client) Source { return c },
			func() *state.Store { return &state.Store{} },
			favorites.New,
			func() *recent.Ring { return &recent.Ring{} },
			newPlayer,
			newPoller,
		),
		fx.Invoke(registerPoller),
	)
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	if opts.EmotionPoll > 0 {
		cfg.EmotionPoll = opts.EmotionPoll
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshEvery = opts.RefreshEvery
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func newClient(cfg config.Config) (*moodapi.Client, error) {
	client, err := moodapi.NewClient(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return client, nil
}

func newPlayer(api moodapi.API, ring *recent.Ring, logger *zap.Logger) *player.Player {
	p := player.New(api)
	p.OnPlay(player.RecordTo(ring))
	p.OnPlay(func(track moodapi.Track, _ time.Time) {
		logger.Info("playing track", zap.String("track_id", track.ID), zap.String("name", track.Name))
	})
	return p
}

func newPoller(api Source, store *state.Store, cfg config.Config, logger *zap.Logger) *Poller {
	return NewPoller(api, store, logger.Named("poller"), cfg.EmotionPoll, cfg.RefreshEvery)
}

func registerPoller(lc fx.Lifecycle, p *Poller, cfg config.Config, logger *zap.Logger) {
	var stop func()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("cadence started", zap.String("server", cfg.ServerURL))
			// The start context ends with startup, so the poller gets its own.
			stop = p.Start(context.Background())
			return nil
		},
		OnStop: func(context.Context) error {
			if stop != nil {
				stop()
			}
			logger.Info("shutting down")
			return nil
		},
	})
}
