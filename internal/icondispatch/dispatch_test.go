package icondispatch

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDoRunsSerialized(t *testing.T) {
	d, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer d.Close()

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Do(func() {
				n := atomic.AddInt32(&inFlight, 1)
				if n > atomic.LoadInt32(&maxInFlight) {
					atomic.StoreInt32(&maxInFlight, n)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
			})
			if err != nil {
				t.Errorf("Do failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if max := atomic.LoadInt32(&maxInFlight); max != 1 {
		t.Errorf("Expected at most 1 call in flight, observed %d", max)
	}
}

func TestEachCallerGetsOwnResult(t *testing.T) {
	d, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer d.Close()

	const n = 32
	results := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := d.Do(func() { results[i] = i * i }); err != nil {
				t.Errorf("Do(%d) failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if results[i] != i*i {
			t.Errorf("caller %d: expected %d, got %d", i, i*i, results[i])
		}
	}
}

func TestSetupRunsOnDispatchThreadBeforeReturn(t *testing.T) {
	ran := false
	d, err := New(func() error { ran = true; return nil }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer d.Close()

	if !ran {
		t.Error("Expected setup to have run before New returned")
	}
}

func TestSetupFailure(t *testing.T) {
	want := errors.New("no apartment for you")
	d, err := New(func() error { return want }, nil)
	if d != nil {
		t.Error("Expected nil dispatcher on setup failure")
	}
	if !errors.Is(err, want) {
		t.Errorf("Expected setup error, got %v", err)
	}
}

func TestCloseRunsTeardownOnce(t *testing.T) {
	var teardowns int32
	d, err := New(nil, func() { atomic.AddInt32(&teardowns, 1) })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	d.Close()
	d.Close()

	// Teardown runs on the dispatch thread; give it a moment.
	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt32(&teardowns) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if n := atomic.LoadInt32(&teardowns); n != 1 {
		t.Errorf("Expected exactly 1 teardown, got %d", n)
	}
}

func TestDoAfterClose(t *testing.T) {
	d, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d.Close()

	if err := d.Do(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}
