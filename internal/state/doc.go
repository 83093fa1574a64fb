// Package state holds the recommendation state shared by the poller and the UI.
//
// # Overview
//
// The poller writes, the UI reads. The Store owns every piece of refresh
// bookkeeping: the last observed emotion, the "updating" flag that keeps the
// periodic refresh from piling up requests, and a generation counter that
// lets late responses be dropped instead of overwriting newer data.
//
//	Producer (Poller):                 Consumer (UI):
//	┌──────────────────────┐          ┌──────────────────┐
//	│ BeginRefresh(force)  │          │                  │
//	│ FetchRecommendations │          │                  │
//	│ CompleteRefresh(gen) │─────────→│ store.Snapshot() │
//	│                      │ (mutex)  │ render grid      │
//	└──────────────────────┘          └──────────────────┘
//
// # Refresh Protocol
//
//	gen, ok := store.BeginRefresh(force)
//	if !ok {
//		return // another refresh is outstanding and this one is not forced
//	}
//	rec, err := client.FetchRecommendations(ctx)
//	store.CompleteRefresh(gen, rec, err, message)
//
// BeginRefresh refuses only unforced requests while updating. A forced
// request always proceeds and supersedes whatever is in flight: only the
// completion carrying the newest generation is applied, and only that
// completion clears the updating flag. The flag is therefore true exactly
// while the newest fetch is outstanding.
//
// # Grid
//
// Partition lays recommendations out as three rows of four. Missing slots are
// filled with placeholder tracks (Empty=true) so the layout never changes
// shape; anything past the twelfth track is ignored.
//
// # Testing Considerations
//
// The zero Store is ready to use.
package state
