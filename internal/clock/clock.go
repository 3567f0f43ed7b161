package clock

import "time"

// NowFunc returns current time. Override in tests for deterministic commit
// timestamps.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
