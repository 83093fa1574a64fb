// Package config loads cadence's TOML configuration.
//
// # Overview
//
// The config file tells cadence where the recommendation server listens, how
// often to poll it and where to write logs. Every field is optional; a
// missing file is not an error and simply yields the defaults.
//
// # Resolution Order
//
//  1. The explicit path passed to Load, if any
//  2. Otherwise ~/.config/cadence/config.toml
//  3. Missing or empty fields fall back to built-in defaults
//  4. CADENCE_SERVER_URL and CADENCE_LOG_LEVEL override the file
//
// # Default Values
//
//   - Server: 127.0.0.1:5000
//   - Emotion poll: 500ms
//   - Recommendation refresh: 30s
//   - Log directory: ~/.local/share/cadence/logs
//   - Log file: <log_dir>/cadence.log
//   - Log level: info
//
// # TOML Format
//
//	server_url = "127.0.0.1:5000"
//	emotion_poll_ms = 500
//	refresh_seconds = 30
//	log_dir = "~/.local/share/cadence/logs"
//	log_level = "info"
//
// Tilde expansion is performed for the config path and log_dir.
//
// # Error Handling
//
// Load fails only when the home directory cannot be resolved, the file exists
// but cannot be read, or the TOML does not parse.
package config
