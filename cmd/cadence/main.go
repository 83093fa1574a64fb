package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/five82/cadence/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default ~/.config/cadence/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (default ~/.config/cadence/prefs.toml)")
	server := flag.String("server", "", "recommendation server address, overrides config")
	pollMS := flag.Int("poll-ms", 0, "emotion poll interval in milliseconds (default 500)")
	refreshSeconds := flag.Int("refresh", 0, "recommendation refresh interval in seconds (default 30)")
	flag.Parse()

	// A missing .env is fine; the environment and config file still apply.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ServerURL:  *server,
	}
	if *pollMS > 0 {
		opts.EmotionPoll = time.Duration(*pollMS) * time.Millisecond
	}
	if *refreshSeconds > 0 {
		opts.RefreshEvery = time.Duration(*refreshSeconds) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
		return 1
	}
	return 0
}
