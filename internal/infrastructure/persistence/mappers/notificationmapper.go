package mappers

import (
	"fieldserve/internal/domain/notification"
	"fieldserve/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		TicketID:  n.TicketID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Body:      n.Body(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.TicketID,
		notification.NotificationType(model.Type),
		model.Title,
		model.Body,
		model.IsRead,
		millisToTime(model.CreatedAt),
	)
}
