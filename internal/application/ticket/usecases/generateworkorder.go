package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/ticket"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

// WorkOrderRenderer turns a completed intervention into a printable
// document. The PDF implementation lives in infrastructure/report.
type WorkOrderRenderer interface {
	Render(data WorkOrderData) ([]byte, error)
}

type WorkOrderPart struct {
	ItemID   uint
	Quantity int
	UnitCost float64
}

type WorkOrderData struct {
	TicketNumber  string
	Title         string
	Priority      string
	TechnicianID  uint
	WorkPerformed string
	RootCause     string
	Resolution    string
	MinutesSpent  int
	Parts         []WorkOrderPart
	TotalCost     float64
	ResolvedAt    *time.Time
}

type GenerateWorkOrderQuery struct {
	TicketID uint
}

type GenerateWorkOrderResult struct {
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	PDF      []byte `json:"-"`
}

// GenerateWorkOrderUseCase renders the work-order document for a
// resolved ticket. Tickets without a recorded intervention have nothing
// to print.
type GenerateWorkOrderUseCase struct {
	ticketRepo       ticket.TicketRepository
	interventionRepo ticket.InterventionRepository
	renderer         WorkOrderRenderer
	logger           logger.Interface
}

func NewGenerateWorkOrderUseCase(
	ticketRepo ticket.TicketRepository,
	interventionRepo ticket.InterventionRepository,
	renderer WorkOrderRenderer,
	logger logger.Interface,
) *GenerateWorkOrderUseCase {
	return &GenerateWorkOrderUseCase{
		ticketRepo:       ticketRepo,
		interventionRepo: interventionRepo,
		renderer:         renderer,
		logger:           logger,
	}
}

func (uc *GenerateWorkOrderUseCase) Execute(ctx context.Context, query GenerateWorkOrderQuery) (*GenerateWorkOrderResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	intervention, err := uc.interventionRepo.GetByTicketID(ctx, t.ID())
	if err != nil || intervention == nil {
		return nil, errors.NewNotFoundError("no intervention recorded for ticket")
	}

	parts := make([]WorkOrderPart, 0, len(intervention.Parts()))
	for _, line := range intervention.Parts() {
		parts = append(parts, WorkOrderPart{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			UnitCost: line.UnitCost,
		})
	}

	data := WorkOrderData{
		TicketNumber:  t.Number(),
		Title:         t.Title(),
		Priority:      t.Priority().String(),
		TechnicianID:  intervention.TechnicianID(),
		WorkPerformed: intervention.WorkPerformed(),
		RootCause:     intervention.RootCause(),
		Resolution:    t.Resolution(),
		MinutesSpent:  intervention.MinutesSpent(),
		Parts:         parts,
		TotalCost:     intervention.TotalCost(),
		ResolvedAt:    t.ResolvedAt(),
	}

	pdf, err := uc.renderer.Render(data)
	if err != nil {
		uc.logger.Errorw("failed to render work order", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to render work order")
	}

	return &GenerateWorkOrderResult{
		TicketID: t.ID(),
		Number:   t.Number(),
		PDF:      pdf,
	}, nil
}
