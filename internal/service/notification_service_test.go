package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func createTestNotification(t *testing.T, db *gorm.DB, userID, message string, createdAt time.Time) *model.Notification {
	t.Helper()
	n := &model.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Type:      model.NotificationTypeAchievement,
		CreatedAt: createdAt,
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}
	return n
}

func TestListMostRecentFirstCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	user := createTestUser(t, db, "alice", 0)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		createTestNotification(t, db, user.ID, fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	list, unread, err := svc.List(context.Background(), user.ID, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 20 {
		t.Fatalf("expected 20 notifications, got %d", len(list))
	}
	if list[0].Message != "message 24" {
		t.Fatalf("expected newest first, got %q", list[0].Message)
	}
	if unread != 25 {
		t.Fatalf("expected 25 unread, got %d", unread)
	}
}

func TestListCapIgnoresLargerLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	user := createTestUser(t, db, "bob", 0)

	base := time.Now().UTC()
	for i := 0; i < 25; i++ {
		createTestNotification(t, db, user.ID, fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Second))
	}

	list, _, err := svc.List(context.Background(), user.ID, 100)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 20 {
		t.Fatalf("limit above cap should clamp to 20, got %d", len(list))
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	user := createTestUser(t, db, "carol", 0)
	n := createTestNotification(t, db, user.ID, "you earned a badge", time.Now().UTC())

	ctx := context.Background()
	if err := svc.MarkRead(ctx, user.ID, n.ID); err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	if err := svc.MarkRead(ctx, user.ID, n.ID); err != nil {
		t.Fatalf("second mark failed: %v", err)
	}

	var stored model.Notification
	if err := db.Where("id = ?", n.ID).First(&stored).Error; err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if !stored.Read {
		t.Fatal("notification not marked read")
	}
}

func TestMarkReadWrongUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	owner := createTestUser(t, db, "dave", 0)
	other := createTestUser(t, db, "erin", 0)
	n := createTestNotification(t, db, owner.ID, "private", time.Now().UTC())

	err := svc.MarkRead(context.Background(), other.ID, n.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(db))
	user := createTestUser(t, db, "frank", 0)

	err := svc.MarkRead(context.Background(), user.ID, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
