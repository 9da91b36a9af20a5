package repl

import (
	"fmt"
	"sync"

	"github.com/lookbusy1344/bignum/bignum"
)

// Threshold fires once a watched value's bit length first reaches or
// exceeds Bits: a one-shot size threshold rather than a continuous
// change-detection watch. REPL.Run checks each evaluated expression's
// result against the registered thresholds.
type Threshold struct {
	ID       int
	Bits     uint
	Fired    bool
	HitCount int
}

// ThresholdWatcher tracks a set of bit-length thresholds against a
// stream of values fed to Check.
type ThresholdWatcher struct {
	mu         sync.Mutex
	thresholds map[int]*Threshold
	nextID     int
}

// NewThresholdWatcher creates an empty watcher.
func NewThresholdWatcher() *ThresholdWatcher {
	return &ThresholdWatcher{thresholds: make(map[int]*Threshold)}
}

// Add registers a new threshold at the given bit length and returns it.
func (w *ThresholdWatcher) Add(bits uint) *Threshold {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	t := &Threshold{ID: w.nextID, Bits: bits}
	w.thresholds[t.ID] = t
	return t
}

// Remove deletes a threshold by ID.
func (w *ThresholdWatcher) Remove(id int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.thresholds[id]; !ok {
		return fmt.Errorf("threshold %d not found", id)
	}
	delete(w.thresholds, id)
	return nil
}

// Check compares value's bit length against every unfired threshold and
// returns the first one value newly crosses, marking it fired so it
// does not retrigger. Returns (nil, false) if none crossed.
func (w *ThresholdWatcher) Check(value *bignum.BigUInt) (*Threshold, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	size := value.SizeInBase2()

	for _, t := range w.thresholds {
		if t.Fired {
			continue
		}
		if size >= t.Bits {
			t.Fired = true
			t.HitCount++
			return t, true
		}
	}
	return nil, false
}

// Reset clears the fired flag on every threshold so the same watcher
// can be reused across a fresh computation.
func (w *ThresholdWatcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, t := range w.thresholds {
		t.Fired = false
	}
}

// All returns every registered threshold.
func (w *ThresholdWatcher) All() []*Threshold {
	w.mu.Lock()
	defer w.mu.Unlock()

	result := make([]*Threshold, 0, len(w.thresholds))
	for _, t := range w.thresholds {
		result = append(result, t)
	}
	return result
}
