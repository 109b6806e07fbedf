package service

import (
	"context"
	"errors"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"gorm.io/gorm"
)

type NotificationService interface {
	Notify(ctx context.Context, userID, typ, message string)
	List(ctx context.Context, userID string, limit int) ([]model.Notification, int64, error)
	MarkRead(ctx context.Context, userID, id string) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Notify is best-effort; a failed append must not break the flow that
// triggered it.
func (s *notificationService) Notify(ctx context.Context, userID, typ, message string) {
	if userID == "" || typ == "" {
		return
	}
	_ = s.repo.Create(ctx, &model.Notification{
		UserID:  userID,
		Type:    typ,
		Message: message,
	})
}

func (s *notificationService) List(ctx context.Context, userID string, limit int) ([]model.Notification, int64, error) {
	list, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	cnt, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return list, 0, err
	}
	return list, cnt, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
