// Package app is the composition root of cadence.
//
// # Overview
//
// Run builds an fx application that provides the configuration, the zap file
// logger, the API client, the shared recommendation store, the favorites
// store, the recently-played ring, the player and the poller. An fx
// lifecycle hook starts the poller goroutine; once the graph is started the
// Bubble Tea program takes over the terminal until the user quits, after
// which the application is stopped and the poller drained.
//
// # Poller
//
//	┌──────────────┐ 500ms  ┌──────────────┐ changed? ┌────────────────┐
//	│ emotion tick │───────→│ PollEmotion  │─────────→│ Refresh(force) │
//	└──────────────┘        └──────────────┘          └───────┬────────┘
//	┌──────────────┐ 30s                                      │
//	│ refresh tick │─────────────────────→ Refresh(false) ────┤
//	└──────────────┘                                          ▼
//	                                                    state.Store
//
// Every tick spawns its work on a new goroutine, so a slow /recommend call
// never delays the next emotion poll. Overlapping polls are tolerated; an
// unforced refresh is skipped while another fetch is outstanding, and the
// store's generation counter makes sure only the newest response is applied.
package app
