// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelrank/internal/models"
	"github.com/tomtom215/reelrank/internal/recommend"
	"github.com/tomtom215/reelrank/internal/recommend/tfidf"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "models"), zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

// snapshotModel builds a small unfinalized snapshot, the same shape the
// engine hands to Save.
func snapshotModel(version string, builtAt time.Time) *recommend.Model {
	year := 1999
	return &recommend.Model{
		Version:       version,
		BuiltAt:       builtAt,
		BuildDuration: 42 * time.Millisecond,
		Movies: []models.MovieRecord{
			{ID: 1, PrimaryTitle: "The Matrix", StartYear: &year, NumVotes: 1_800_000, Genres: []string{"Action", "Sci-Fi"}},
			{ID: 2, PrimaryTitle: "Heat", NumVotes: 700_000, Genres: []string{"Crime"}},
		},
		Terms: []string{"action", "crime", "sci-fi"},
		IDF:   []float64{1.4054651081081644, 1.4054651081081644, 1.4054651081081644},
		Rows: []tfidf.SparseVector{
			{Indices: []int{0, 2}, Values: []float64{0.7071067811865476, 0.7071067811865476}},
			{Indices: []int{1}, Values: []float64{1}},
		},
	}
}

func TestStore_SaveAndLoadLatest(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	want := snapshotModel("v-1", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	version, err := s.Save(ctx, want)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if version != "v-1" {
		t.Errorf("Save() version = %q, want %q", version, "v-1")
	}

	got, err := s.LoadLatest(ctx)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}

	if got.Version != want.Version {
		t.Errorf("Version = %q, want %q", got.Version, want.Version)
	}
	if !got.BuiltAt.Equal(want.BuiltAt) {
		t.Errorf("BuiltAt = %v, want %v", got.BuiltAt, want.BuiltAt)
	}
	if got.BuildDuration != want.BuildDuration {
		t.Errorf("BuildDuration = %v, want %v", got.BuildDuration, want.BuildDuration)
	}
	if !reflect.DeepEqual(got.Movies, want.Movies) {
		t.Errorf("Movies = %+v, want %+v", got.Movies, want.Movies)
	}
	if !reflect.DeepEqual(got.Terms, want.Terms) {
		t.Errorf("Terms = %v, want %v", got.Terms, want.Terms)
	}
	if !reflect.DeepEqual(got.IDF, want.IDF) {
		t.Errorf("IDF = %v, want %v", got.IDF, want.IDF)
	}
	if !reflect.DeepEqual(got.Rows, want.Rows) {
		t.Errorf("Rows = %+v, want %+v", got.Rows, want.Rows)
	}
}

func TestStore_LoadLatestEmpty(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	_, err := s.LoadLatest(context.Background())
	if !errors.Is(err, recommend.ErrModelNotLoaded) {
		t.Errorf("LoadLatest() error = %v, want ErrModelNotLoaded", err)
	}
}

func TestStore_LatestFollowsSaves(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, version := range []string{"v-1", "v-2", "v-3"} {
		if _, err := s.Save(ctx, snapshotModel(version, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Save(%s) error = %v", version, err)
		}
	}

	got, err := s.LoadLatest(ctx)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}
	if got.Version != "v-3" {
		t.Errorf("LoadLatest() version = %q, want %q", got.Version, "v-3")
	}

	versions, err := s.Versions(ctx)
	if err != nil {
		t.Fatalf("Versions() error = %v", err)
	}
	if want := []string{"v-1", "v-2", "v-3"}; !reflect.DeepEqual(versions, want) {
		t.Errorf("Versions() = %v, want %v", versions, want)
	}
}

func TestStore_Prune(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, version := range []string{"v-1", "v-2", "v-3", "v-4"} {
		if _, err := s.Save(ctx, snapshotModel(version, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Save(%s) error = %v", version, err)
		}
	}

	if err := s.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	versions, err := s.Versions(ctx)
	if err != nil {
		t.Fatalf("Versions() error = %v", err)
	}
	if want := []string{"v-3", "v-4"}; !reflect.DeepEqual(versions, want) {
		t.Errorf("Versions() after prune = %v, want %v", versions, want)
	}

	got, err := s.LoadLatest(ctx)
	if err != nil {
		t.Fatalf("LoadLatest() after prune error = %v", err)
	}
	if got.Version != "v-4" {
		t.Errorf("LoadLatest() version = %q, want %q", got.Version, "v-4")
	}

	// Pruning below the current count is a no-op.
	if err := s.Prune(ctx, 10); err != nil {
		t.Fatalf("Prune(10) error = %v", err)
	}
	versions, err = s.Versions(ctx)
	if err != nil {
		t.Fatalf("Versions() error = %v", err)
	}
	if len(versions) != 2 {
		t.Errorf("len(Versions()) = %d, want 2", len(versions))
	}

	if err := s.Prune(ctx, 0); err == nil {
		t.Error("Prune(0) = nil error, want error")
	}
}

func TestStore_Reopen(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "models")
	ctx := context.Background()

	first, err := New(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := first.Save(ctx, snapshotModel("v-1", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := New(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	defer second.Close()

	got, err := second.LoadLatest(ctx)
	if err != nil {
		t.Fatalf("LoadLatest() after reopen error = %v", err)
	}
	if got.Version != "v-1" {
		t.Errorf("LoadLatest() version = %q, want %q", got.Version, "v-1")
	}
}
