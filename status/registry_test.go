package status

import (
	"sync"
	"testing"
)

func TestMetricMapReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	a.Add(3)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Expected cached pointer for same key")
	}
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyFoodEaten).Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(KeyFoodEaten).Load(); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected one metric, got %d", r.Ints.Count())
	}
}

func TestLinesOrdering(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(7)
	r.Ints.Get(KeyFoodEaten).Store(2)
	r.Floats.Get(KeyRateMultiplier).Set(0.6)
	r.Strings.Get(KeyEffect).Store("slow")

	want := []string{
		"food.eaten=2",
		"run.ticks=7",
		"tick.multiplier=0.60",
		"effect.active=slow",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should be empty")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz")
	if len(s.Load()) != maxStringLen {
		t.Errorf("Expected %d bytes, got %d", maxStringLen, len(s.Load()))
	}
}
