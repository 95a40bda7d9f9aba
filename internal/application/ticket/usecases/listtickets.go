package usecases

import (
	"context"

	"fieldserve/internal/application/ticket/dto"
	"fieldserve/internal/domain/ticket"
	vo "fieldserve/internal/domain/ticket/valueobjects"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status       string
	Priority     string
	DeviceID     *uint
	RestaurantID *uint
	AssigneeID   *uint
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
	UserID       uint
	Role         authorization.UserRole
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO `json:"tickets"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	page, pageSize := pagination.Page, pagination.PageSize

	filter := ticket.TicketFilter{
		DeviceID:     query.DeviceID,
		RestaurantID: query.RestaurantID,
		AssigneeID:   query.AssigneeID,
		Search:       query.Search,
		Page:         page,
		PageSize:     pageSize,
		SortBy:       query.SortBy,
		SortOrder:    query.SortOrder,
	}

	if len(query.Status) > 0 {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if len(query.Priority) > 0 {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	// Restaurant staff only see tickets they created.
	if query.Role == authorization.RoleRestaurantStaff {
		userID := query.UserID
		filter.CreatorID = &userID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
