package invest

import "sync"

// Tracker assigns each analysis request a monotonically increasing
// sequence number per report, so a completion that arrives after a
// newer request was issued can be detected and discarded. The price
// field re-triggers analysis on every edit; without this, a slow older
// call could overwrite a fresher result.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uint64)}
}

// Begin issues the next sequence number for reportID. Every issued
// number supersedes all earlier ones for the same report.
func (t *Tracker) Begin(reportID string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[reportID]++
	return t.latest[reportID]
}

// IsCurrent reports whether seq is still the latest issued sequence for
// reportID. A false return means the completion is stale and its result
// must not be applied.
func (t *Tracker) IsCurrent(reportID string, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[reportID] == seq
}

// CompleteIfCurrent runs apply only while seq is still the latest issued
// sequence for reportID, holding the tracker lock across both the check
// and the apply. A bare IsCurrent check followed by a separate write
// leaves a window where a newer request begins between the two and the
// stale result lands last anyway; this closes it. Returns whether apply
// ran.
func (t *Tracker) CompleteIfCurrent(reportID string, seq uint64, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest[reportID] != seq {
		return false
	}
	apply()
	return true
}
