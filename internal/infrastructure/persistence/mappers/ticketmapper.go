package mappers

import (
	"encoding/json"
	"fmt"

	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	HistoryToModel(h *ticket.HistoryEntry) *models.HistoryModel
	HistoryToDomain(model *models.HistoryModel) (*ticket.HistoryEntry, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	InterventionToModel(i *ticket.Intervention) (*models.InterventionModel, error)
	InterventionToDomain(model *models.InterventionModel) (*ticket.Intervention, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	photosJSON, err := json.Marshal(t.Photos())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket photos: %w", err)
	}

	return &models.TicketModel{
		ID:              t.ID(),
		Number:          t.Number(),
		Title:           t.Title(),
		Description:     t.Description(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		DeviceID:        t.DeviceID(),
		RestaurantID:    t.RestaurantID(),
		CreatorID:       t.CreatorID(),
		AssigneeID:      t.AssigneeID(),
		Photos:          photosJSON,
		Resolution:      t.Resolution(),
		SLADueTime:      t.SLADueTime().UnixMilli(),
		FirstResponseAt: timePtrToMillis(t.FirstResponseAt()),
		AssignedAt:      timePtrToMillis(t.AssignedAt()),
		ResolvedAt:      timePtrToMillis(t.ResolvedAt()),
		ClosedAt:        timePtrToMillis(t.ClosedAt()),
		Version:         t.Version(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var photos []string
	if len(model.Photos) > 0 {
		if err := json.Unmarshal(model.Photos, &photos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket photos (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.DeviceID,
		model.RestaurantID,
		model.CreatorID,
		model.AssigneeID,
		photos,
		model.Resolution,
		millisToTime(model.SLADueTime),
		millisPtrToTime(model.FirstResponseAt),
		millisPtrToTime(model.AssignedAt),
		millisPtrToTime(model.ResolvedAt),
		millisPtrToTime(model.ClosedAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.HistoryModel {
	return &models.HistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		Status:    h.Status().String(),
		Notes:     h.Notes(),
		ActorID:   h.ActorID(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.HistoryModel) (*ticket.HistoryEntry, error) {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		vo.TicketStatus(model.Status),
		model.Notes,
		model.ActorID,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) InterventionToModel(i *ticket.Intervention) (*models.InterventionModel, error) {
	partsJSON, err := json.Marshal(i.Parts())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intervention parts: %w", err)
	}

	return &models.InterventionModel{
		ID:            i.ID(),
		TicketID:      i.TicketID(),
		TechnicianID:  i.TechnicianID(),
		WorkPerformed: i.WorkPerformed(),
		RootCause:     i.RootCause(),
		MinutesSpent:  i.MinutesSpent(),
		Parts:         partsJSON,
		TotalCost:     i.TotalCost(),
		CreatedAt:     i.CreatedAt().UnixMilli(),
	}, nil
}

func (m *TicketMapperImpl) InterventionToDomain(model *models.InterventionModel) (*ticket.Intervention, error) {
	var parts []ticket.PartLine
	if len(model.Parts) > 0 {
		if err := json.Unmarshal(model.Parts, &parts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal intervention parts (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructIntervention(
		model.ID,
		model.TicketID,
		model.TechnicianID,
		model.WorkPerformed,
		model.RootCause,
		model.MinutesSpent,
		parts,
		model.TotalCost,
		millisToTime(model.CreatedAt),
	)
}
