package visitor

import (
	"context"
	"sync"
	"testing"
)

func TestTrackAndGetStatsWithoutRedis(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVisitors != totalBaseline || stats.TodaysVisitors != 0 {
		t.Fatalf("fresh counters wrong: %+v", stats)
	}

	for i := 0; i < 5; i++ {
		if err := svc.Track(ctx); err != nil {
			t.Fatalf("track: %v", err)
		}
	}

	stats, err = svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVisitors != totalBaseline+5 {
		t.Fatalf("total = %d, want %d", stats.TotalVisitors, totalBaseline+5)
	}
	if stats.TodaysVisitors != 5 {
		t.Fatalf("today = %d, want 5", stats.TodaysVisitors)
	}
	if stats.LastResetDate == "" {
		t.Fatal("missing reset date")
	}
}

func TestTrackConcurrent(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Track(ctx)
		}()
	}
	wg.Wait()

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TodaysVisitors != 50 {
		t.Fatalf("today = %d, want 50", stats.TodaysVisitors)
	}
}
