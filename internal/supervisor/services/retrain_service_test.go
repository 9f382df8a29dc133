// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// mockModelEngine is a mock implementation for testing.
type mockModelEngine struct {
	mu           sync.Mutex
	ready        bool
	trainCalls   int
	trainErr     error
	restoreCalls int
	restoreErr   error
	nextTraining time.Time
}

func (m *mockModelEngine) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

func (m *mockModelEngine) Train(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trainCalls++
	if m.trainErr == nil {
		m.ready = true
	}
	return m.trainErr
}

func (m *mockModelEngine) LoadFromStore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restoreCalls++
	if m.restoreErr == nil {
		m.ready = true
	}
	return m.restoreErr
}

func (m *mockModelEngine) SetNextTraining(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTraining = t
}

func (m *mockModelEngine) getTrainCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trainCalls
}

func (m *mockModelEngine) getRestoreCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.restoreCalls
}

func (m *mockModelEngine) getNextTraining() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextTraining
}

func TestRetrainService_Interface(t *testing.T) {
	var _ suture.Service = (*RetrainService)(nil)
}

func TestRetrainService_String(t *testing.T) {
	service := NewRetrainService(&mockModelEngine{}, RetrainConfig{Interval: time.Hour}, zerolog.Nop())

	if got := service.String(); got != "retrain-service" {
		t.Errorf("String() = %q, want %q", got, "retrain-service")
	}
}

func TestRetrainService_RestoreOnStartup(t *testing.T) {
	engine := &mockModelEngine{}
	cfg := RetrainConfig{
		RestoreOnStartup: true,
		Interval:         time.Hour,
	}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	if got := engine.getRestoreCalls(); got != 1 {
		t.Errorf("LoadFromStore() called %d times, want 1", got)
	}
}

func TestRetrainService_TrainOnStartupWhenRestoreFails(t *testing.T) {
	engine := &mockModelEngine{restoreErr: errors.New("no snapshots")}
	cfg := RetrainConfig{
		RestoreOnStartup: true,
		TrainOnStartup:   true,
		Interval:         time.Hour,
	}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	if got := engine.getTrainCalls(); got != 1 {
		t.Errorf("Train() called %d times, want 1", got)
	}
}

func TestRetrainService_NoTrainWhenSnapshotRestored(t *testing.T) {
	engine := &mockModelEngine{}
	cfg := RetrainConfig{
		RestoreOnStartup: true,
		TrainOnStartup:   true,
		Interval:         time.Hour,
	}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	// Restore succeeded, so the startup build is skipped.
	if got := engine.getTrainCalls(); got != 0 {
		t.Errorf("Train() called %d times, want 0", got)
	}
}

func TestRetrainService_NoTrainOnStartup(t *testing.T) {
	engine := &mockModelEngine{}
	cfg := RetrainConfig{
		TrainOnStartup: false,
		Interval:       time.Hour,
	}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	if got := engine.getTrainCalls(); got != 0 {
		t.Errorf("Train() called %d times, want 0", got)
	}
}

func TestRetrainService_ScheduledTraining(t *testing.T) {
	engine := &mockModelEngine{}
	cfg := RetrainConfig{
		TrainOnStartup: false,
		Interval:       50 * time.Millisecond,
	}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 130*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	// ~130ms at a 50ms interval should fire at least twice.
	if got := engine.getTrainCalls(); got < 2 {
		t.Errorf("Train() called %d times, want >= 2", got)
	}
}

func TestRetrainService_TrainingErrorDoesNotStopService(t *testing.T) {
	engine := &mockModelEngine{trainErr: errors.New("corpus unavailable")}
	cfg := RetrainConfig{
		TrainOnStartup: true,
		Interval:       50 * time.Millisecond,
	}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 130*time.Millisecond)
	defer cancel()

	err := service.Serve(ctx)

	// The service keeps ticking through failures and exits only on ctx.
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := engine.getTrainCalls(); got < 2 {
		t.Errorf("Train() called %d times, want >= 2", got)
	}
}

func TestRetrainService_PublishesNextTraining(t *testing.T) {
	engine := &mockModelEngine{}
	cfg := RetrainConfig{Interval: time.Hour}

	service := NewRetrainService(engine, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_ = service.Serve(ctx)

	next := engine.getNextTraining()
	if next.IsZero() {
		t.Fatal("next training time was not published")
	}
	if next.Before(start.Add(30 * time.Minute)) {
		t.Errorf("next training %v too soon for 1h interval started at %v", next, start)
	}
}

func TestRetrainService_DefaultInterval(t *testing.T) {
	engine := &mockModelEngine{}
	service := NewRetrainService(engine, RetrainConfig{}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_ = service.Serve(ctx)

	// Zero interval falls back to 24h; the published next run reflects it.
	next := engine.getNextTraining()
	if next.Before(start.Add(23 * time.Hour)) {
		t.Errorf("next training %v does not reflect the 24h default", next)
	}
}
