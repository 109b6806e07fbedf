package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
)

func TestLeaderboardPositionalRanks(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(repository.NewUserRepository(db))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	users := []struct {
		name   string
		points int
	}{
		{"first", 300},
		{"second", 300},
		{"third", 100},
	}
	for i, u := range users {
		user := createTestUser(t, db, u.name, u.points)
		// Distinct creation times keep tie order stable.
		if err := db.Model(&model.User{}).Where("id = ?", user.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Second)).Error; err != nil {
			t.Fatalf("failed to set created_at: %v", err)
		}
	}

	entries, err := svc.Top(context.Background(), 10)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantNames := []string{"first", "second", "third"}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d rank=%d, want %d", i, e.Rank, i+1)
		}
		if e.Username != wantNames[i] {
			t.Errorf("entry %d username=%q, want %q", i, e.Username, wantNames[i])
		}
	}
	if entries[0].Points != 300 || entries[1].Points != 300 || entries[2].Points != 100 {
		t.Fatalf("points out of order: %+v", entries)
	}
}

func TestLeaderboardLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(repository.NewUserRepository(db))

	for _, name := range []string{"a", "b", "c", "d"} {
		createTestUser(t, db, name, len(name))
	}
	entries, err := svc.Top(context.Background(), 2)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}
