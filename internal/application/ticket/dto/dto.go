package dto

import (
	"time"

	"fieldserve/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Number          string     `json:"number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	DeviceID        uint       `json:"device_id"`
	RestaurantID    uint       `json:"restaurant_id"`
	CreatorID       uint       `json:"creator_id"`
	AssigneeID      *uint      `json:"assignee_id"`
	Photos          []string   `json:"photos"`
	Resolution      string     `json:"resolution,omitempty"`
	SLADueTime      time.Time  `json:"sla_due_time"`
	IsOverdue       bool       `json:"is_overdue"`
	FirstResponseAt *time.Time `json:"first_response_at"`
	AssignedAt      *time.Time `json:"assigned_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	ClosedAt        *time.Time `json:"closed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Comments        []CommentDTO `json:"comments,omitempty"`
	History         []HistoryDTO `json:"history,omitempty"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryDTO struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	ActorID   uint      `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID           uint      `json:"id"`
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	DeviceID     uint      `json:"device_id"`
	RestaurantID uint      `json:"restaurant_id"`
	CreatorID    uint      `json:"creator_id"`
	AssigneeID   *uint     `json:"assignee_id"`
	SLADueTime   time.Time `json:"sla_due_time"`
	IsOverdue    bool      `json:"is_overdue"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type InterventionDTO struct {
	ID            uint          `json:"id"`
	TicketID      uint          `json:"ticket_id"`
	TechnicianID  uint          `json:"technician_id"`
	WorkPerformed string        `json:"work_performed"`
	RootCause     string        `json:"root_cause"`
	MinutesSpent  int           `json:"minutes_spent"`
	Parts         []PartLineDTO `json:"parts"`
	TotalCost     float64       `json:"total_cost"`
	CreatedAt     time.Time     `json:"created_at"`
}

type PartLineDTO struct {
	ItemID   uint    `json:"item_id"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, history []*ticket.HistoryEntry) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, CommentDTO{
			ID:        c.ID(),
			UserID:    c.UserID(),
			Content:   c.Content(),
			CreatedAt: c.CreatedAt(),
		})
	}

	historyDTOs := make([]HistoryDTO, 0, len(history))
	for _, h := range history {
		historyDTOs = append(historyDTOs, HistoryDTO{
			ID:        h.ID(),
			Status:    h.Status().String(),
			Notes:     h.Notes(),
			ActorID:   h.ActorID(),
			CreatedAt: h.CreatedAt(),
		})
	}

	return &TicketDTO{
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
		Photos:          t.Photos(),
		Resolution:      t.Resolution(),
		SLADueTime:      t.SLADueTime(),
		IsOverdue:       t.IsOverdue(),
		FirstResponseAt: t.FirstResponseAt(),
		AssignedAt:      t.AssignedAt(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		Comments:        commentDTOs,
		History:         historyDTOs,
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		Title:        t.Title(),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		DeviceID:     t.DeviceID(),
		RestaurantID: t.RestaurantID(),
		CreatorID:    t.CreatorID(),
		AssigneeID:   t.AssigneeID(),
		SLADueTime:   t.SLADueTime(),
		IsOverdue:    t.IsOverdue(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func ToInterventionDTO(iv *ticket.Intervention) *InterventionDTO {
	if iv == nil {
		return nil
	}

	parts := make([]PartLineDTO, 0, len(iv.Parts()))
	for _, p := range iv.Parts() {
		parts = append(parts, PartLineDTO{
			ItemID:   p.ItemID,
			Quantity: p.Quantity,
			UnitCost: p.UnitCost,
		})
	}

	return &InterventionDTO{
		ID:            iv.ID(),
		TicketID:      iv.TicketID(),
		TechnicianID:  iv.TechnicianID(),
		WorkPerformed: iv.WorkPerformed(),
		RootCause:     iv.RootCause(),
		MinutesSpent:  iv.MinutesSpent(),
		Parts:         parts,
		TotalCost:     iv.TotalCost(),
		CreatedAt:     iv.CreatedAt(),
	}
}
