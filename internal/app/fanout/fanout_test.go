package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/timekeeper/internal/app/fanout"
)

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, nil, func(context.Context, int64) (int64, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	if results == nil || len(results) != 0 {
		t.Fatalf("Run() = %v, want empty non-nil slice", results)
	}
}

func TestRun_PartialFailureKeepsOrder(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd id")
	ids := []int64{4, 7, 10, 13, 16}

	results := fanout.Run(context.Background(), 2, ids, func(_ context.Context, id int64) (int64, error) {
		// Later items finish first.
		time.Sleep(time.Duration(20-id) * time.Millisecond)
		if id%2 == 1 {
			return 0, errOdd
		}
		return id * 100, nil
	})

	if len(results) != len(ids) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(ids))
	}
	for i, id := range ids {
		r := results[i]
		if id%2 == 1 {
			if !errors.Is(r.Err, errOdd) {
				t.Errorf("results[%d].Err = %v, want %v", i, r.Err, errOdd)
			}
			continue
		}
		if r.Err != nil || r.Value != id*100 {
			t.Errorf("results[%d] = {%d, %v}, want {%d, nil}", i, r.Value, r.Err, id*100)
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		wantPeak   int32
	}{
		{name: "three workers", maxWorkers: 3, wantPeak: 3},
		{name: "zero means one", maxWorkers: 0, wantPeak: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var active, peak atomic.Int32
			items := make([]int, 12)

			fanout.Run(context.Background(), tt.maxWorkers, items, func(context.Context, int) (struct{}, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return struct{}{}, nil
			})

			if p := peak.Load(); p > tt.wantPeak {
				t.Errorf("peak concurrency = %d, want <= %d", p, tt.wantPeak)
			}
		})
	}
}

func TestRun_CancelledItemsDoNotStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		started.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v, want nil for the started item", results[0].Err)
	}
	for i := 1; i < len(results); i++ {
		if !errors.Is(results[i].Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, results[i].Err)
		}
	}
	if got := started.Load(); got != 1 {
		t.Errorf("started %d items, want 1", got)
	}
}
