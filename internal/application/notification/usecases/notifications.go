package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/notification"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// UnreadCounter caches per-user unread counts. The Redis implementation
// lives in infrastructure/cache; a nil counter falls back to the database.
type UnreadCounter interface {
	Get(ctx context.Context, userID uint) (int64, bool)
	Set(ctx context.Context, userID uint, count int64)
	Invalidate(ctx context.Context, userID uint)
}

type NotificationResult struct {
	NotificationID uint      `json:"notification_id"`
	TicketID       *uint     `json:"ticket_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []NotificationResult `json:"notifications"`
	Total         int64                `json:"total"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"page_size"`
}

// NotificationService covers the read-side of in-app notifications.
// Creation happens in the event handlers that react to ticket activity.
type NotificationService struct {
	repo    notification.Repository
	counter UnreadCounter
	logger  logger.Interface
}

func NewNotificationService(repo notification.Repository, counter UnreadCounter, logger logger.Interface) *NotificationService {
	return &NotificationService{
		repo:    repo,
		counter: counter,
		logger:  logger,
	}
}

func (s *NotificationService) List(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	items, total, err := s.repo.ListByUser(ctx, query.UserID, notification.Filter{
		UnreadOnly: query.UnreadOnly,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	results := make([]NotificationResult, 0, len(items))
	for _, n := range items {
		results = append(results, NotificationResult{
			NotificationID: n.ID(),
			TicketID:       n.TicketID(),
			Type:           n.Type().String(),
			Title:          n.Title(),
			Body:           n.Body(),
			IsRead:         n.IsRead(),
			CreatedAt:      n.CreatedAt(),
		})
	}

	return &ListNotificationsResult{
		Notifications: results,
		Total:         total,
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	if userID == 0 || notificationID == 0 {
		return errors.NewValidationError("user ID and notification ID are required")
	}

	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return errors.NewNotFoundError("notification not found")
	}
	if n.UserID() != userID {
		return errors.NewForbiddenError("notification belongs to another user")
	}
	if n.IsRead() {
		return nil
	}

	n.MarkRead()
	if err := s.repo.Update(ctx, n); err != nil {
		s.logger.Errorw("failed to mark notification read", "error", err, "notification_id", notificationID)
		return err
	}

	if s.counter != nil {
		s.counter.Invalidate(ctx, userID)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		s.logger.Errorw("failed to mark all notifications read", "error", err, "user_id", userID)
		return err
	}
	if s.counter != nil {
		s.counter.Set(ctx, userID, 0)
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.NewValidationError("user ID is required")
	}

	if s.counter != nil {
		if count, ok := s.counter.Get(ctx, userID); ok {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to count unread notifications", "error", err, "user_id", userID)
		return 0, err
	}

	if s.counter != nil {
		s.counter.Set(ctx, userID, count)
	}
	return count, nil
}
