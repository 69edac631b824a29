package dedupe

// Package dedupe provides shared singleflight groups used to coalesce
// concurrent read-side work. Using a centralized singleflight.Group ensures
// that only one job runs for a given key while other callers wait for the
// result.

import "golang.org/x/sync/singleflight"

// SnapshotGroup coalesces concurrent battle snapshot reads keyed by the
// battle join code, so a burst of polling clients hits the database once.
var SnapshotGroup singleflight.Group

// LeaderboardGroup coalesces concurrent leaderboard queries (single key).
var LeaderboardGroup singleflight.Group
