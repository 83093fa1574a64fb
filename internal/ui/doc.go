// Package ui provides the Bubble Tea terminal interface of cadence.
//
// # Architecture Overview
//
// Model follows the Elm architecture. A 250ms tick copies the latest
// state.Snapshot written by the poller; everything that talks to the server
// runs as a tea.Cmd and reports back through a result message.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and key handling
//   - grid.go, card.go: the 3x4 recommendation grid and its cards
//   - panel.go: the favorites/history side panel and its search box
//   - dispatch.go: play, skip, favorite, copy and theme actions
//   - mouse.go: the single click dispatcher
//   - feedback.go: the emotion/track rating modal
//   - toast.go, help.go, header.go: chrome
//
// # Interaction Model
//
// Keys and clicks resolve to an action plus a track id and go through
// Model.dispatch. Clickable regions are derived from the same layout code
// the view renders with, using fixed card geometry. A click outside the open
// panel closes it, except on the header buttons, which are resolved first.
//
// # Concurrency
//
// Commands run on goroutines, so the favorites store, the recently-played
// ring and the player are all mutex-protected. The side panel drops stale
// responses with its own generation counter, like state.Store does for
// recommendations.
package ui
