package invest

import (
	"sync"
	"testing"
)

func TestTrackerSupersedes(t *testing.T) {
	tr := NewTracker()

	first := tr.Begin("report-1")
	second := tr.Begin("report-1")

	if second <= first {
		t.Fatalf("sequence not increasing: %d then %d", first, second)
	}
	if tr.IsCurrent("report-1", first) {
		t.Error("older request should be stale after a newer one is issued")
	}
	if !tr.IsCurrent("report-1", second) {
		t.Error("newest request should be current")
	}
}

func TestTrackerIsPerReport(t *testing.T) {
	tr := NewTracker()

	a := tr.Begin("report-a")
	tr.Begin("report-b")

	if !tr.IsCurrent("report-a", a) {
		t.Error("a request on another report must not supersede this one")
	}
}

func TestTrackerConcurrentBegins(t *testing.T) {
	tr := NewTracker()

	const n = 100
	var wg sync.WaitGroup
	seqs := make(chan uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seqs <- tr.Begin("report-1")
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[uint64]bool)
	var max uint64
	for s := range seqs {
		if seen[s] {
			t.Fatalf("duplicate sequence issued: %d", s)
		}
		seen[s] = true
		if s > max {
			max = s
		}
	}
	if max != n {
		t.Errorf("expected max sequence %d, got %d", n, max)
	}
	if !tr.IsCurrent("report-1", max) {
		t.Error("highest issued sequence should be current")
	}
}

func TestTrackerCompleteIfCurrentDiscardsStale(t *testing.T) {
	tr := NewTracker()

	old := tr.Begin("report-1")
	newer := tr.Begin("report-1")

	var applied []uint64
	if tr.CompleteIfCurrent("report-1", old, func() { applied = append(applied, old) }) {
		t.Error("stale completion must not apply")
	}
	if !tr.CompleteIfCurrent("report-1", newer, func() { applied = append(applied, newer) }) {
		t.Error("current completion must apply")
	}
	if len(applied) != 1 || applied[0] != newer {
		t.Errorf("applied = %v, want only seq %d", applied, newer)
	}
}

func TestTrackerStaleCompletionCannotLandLast(t *testing.T) {
	// Interleaving this guards against: an older completion passes a
	// standalone staleness check, a newer request begins and stores its
	// result, then the older goroutine resumes and writes anyway. With
	// the check and the write in one critical section the older write
	// is refused outright.
	tr := NewTracker()
	old := tr.Begin("report-1")

	var stored uint64
	newer := tr.Begin("report-1")
	if !tr.CompleteIfCurrent("report-1", newer, func() { stored = newer }) {
		t.Fatal("newer completion should apply")
	}

	if tr.CompleteIfCurrent("report-1", old, func() { stored = old }) {
		t.Error("resumed stale completion must be refused")
	}
	if stored != newer {
		t.Errorf("stored seq = %d, newer result was overwritten by seq %d", stored, old)
	}
}

func TestTrackerConcurrentCompletions(t *testing.T) {
	tr := NewTracker()

	const n = 50
	var mu sync.Mutex
	var lastApplied uint64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq := tr.Begin("report-1")
			tr.CompleteIfCurrent("report-1", seq, func() {
				mu.Lock()
				lastApplied = seq
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	// Applies are serialized by the tracker lock and only ever run for
	// the currently latest sequence, so the last applied one must still
	// be current once every goroutine is done.
	if !tr.IsCurrent("report-1", lastApplied) {
		t.Errorf("last applied seq %d is not the latest", lastApplied)
	}
}
