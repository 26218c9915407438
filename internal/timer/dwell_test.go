package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hammamikhairi/sproutchef/internal/logger"
)

func TestDwellFires(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	d := NewDwell(log)

	fired := make(chan struct{})
	d.Start(context.Background(), 10*time.Millisecond, func() { close(fired) })

	if !d.Active() {
		t.Fatal("expected dwell to be active right after start")
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("dwell never fired")
	}

	// The callback runs after the pending wait is cleared.
	if d.Active() {
		t.Fatal("expected dwell to be idle after firing")
	}
}

func TestDwellStop(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	d := NewDwell(log)

	var calls atomic.Int32
	d.Start(context.Background(), 30*time.Millisecond, func() { calls.Add(1) })

	if !d.Stop() {
		t.Fatal("expected Stop to report a pending wait")
	}
	if d.Stop() {
		t.Fatal("second Stop should report nothing pending")
	}

	time.Sleep(80 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Fatalf("expected no callback after stop, got %d", n)
	}
}

func TestDwellContextCancel(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	d := NewDwell(log)
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	d.Start(ctx, 30*time.Millisecond, func() { calls.Add(1) })
	cancel()

	time.Sleep(80 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Fatalf("expected no callback after cancel, got %d", n)
	}
}

func TestDwellRestartReplaces(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	d := NewDwell(log)

	var first, second atomic.Int32
	done := make(chan struct{})
	d.Start(context.Background(), 20*time.Millisecond, func() { first.Add(1) })
	d.Start(context.Background(), 20*time.Millisecond, func() {
		second.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement dwell never fired")
	}
	time.Sleep(40 * time.Millisecond)

	if first.Load() != 0 || second.Load() != 1 {
		t.Fatalf("expected only the replacement to fire, got first=%d second=%d", first.Load(), second.Load())
	}
}
