// Package moodapi provides an HTTP client for the mood recommendation server.
//
// # Overview
//
// The server detects the listener's emotion, builds a Spotify playlist for
// it, and keeps per-session favorites, skips and feedback. This package is
// the only place that talks to it; everything else works with the typed
// payloads defined here.
//
// # Architecture
//
//   - client.go: HTTP client, request encoding and response decoding
//   - types.go: Data structures mirroring the server's JSON payloads
//   - errors.go: APIError and the Message helper used for user-facing text
//
// # Client Usage
//
//	client, err := moodapi.NewClient("127.0.0.1:5000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	rec, err := client.FetchRecommendations(ctx)
//	if err != nil {
//		fmt.Println(moodapi.Message(err, "Failed to get recommendations"))
//	}
//
// # Error Handling
//
// Two failure kinds exist. Transport failures (refused connection, timeout,
// undecodable body) are returned as wrapped errors. Application failures,
// meaning an HTTP status >= 400 or a payload with success=false, are
// returned as *APIError carrying the server's message when it sent one.
// Callers turn either kind into user-facing text with Message, which prefers
// the server message over the caller's fallback.
//
// No request is retried. Every call is at-most-once.
//
// # Sessions
//
// The server stores favorites and skipped tracks in its session cookie, so
// the client keeps a cookie jar for its lifetime.
package moodapi
