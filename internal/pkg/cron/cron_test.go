package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSchedulerRunsRegisteredJob(t *testing.T) {
	s := New()
	ran := make(chan struct{}, 1)
	s.Register(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Fn: func(context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}
}

func TestSchedulerRecordsFailure(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "boom",
		Interval: time.Hour,
		Fn:       func(context.Context) error { return errors.New("db down") },
	})

	js := s.jobs["boom"]
	s.execute(context.Background(), js)

	items := s.List()
	if len(items) != 1 {
		t.Fatalf("expected 1 job, got %d", len(items))
	}
	if items[0].Status != StatusReject || items[0].Message != "db down" {
		t.Fatalf("unexpected state: %+v", items[0])
	}
	if items[0].LastRunAt == nil {
		t.Fatal("LastRunAt should be recorded")
	}
}

func TestListBeforeAnyRun(t *testing.T) {
	s := New()
	s.Register(Job{Name: "idle", Interval: time.Hour, Fn: func(context.Context) error { return nil }})

	items := s.List()
	if items[0].Status != StatusIdle || items[0].LastRunAt != nil {
		t.Fatalf("fresh job should be idle: %+v", items[0])
	}
}
