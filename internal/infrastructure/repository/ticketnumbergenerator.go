package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"fieldserve/internal/shared/biztime"
	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/db"
)

// TicketNumberGenerator issues daily-sequenced ticket numbers of the
// form FS-YYYYMMDD-NNNN, continuing from whatever the table already
// holds so numbers survive restarts.
type TicketNumberGenerator struct {
	db *gorm.DB
}

func NewTicketNumberGenerator(database *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{db: database}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	dateKey := biztime.DateKey(biztime.NowUTC())
	prefix := fmt.Sprintf("FS-%s-", dateKey)

	var last string
	tx := db.GetTxFromContext(ctx, g.db)
	err := tx.WithContext(ctx).
		Table(constants.TableTickets).
		Where("number LIKE ?", prefix+"%").
		Order("number DESC").
		Limit(1).
		Pluck("number", &last).Error
	if err != nil {
		return "", fmt.Errorf("failed to query last ticket number: %w", err)
	}

	seq := 1
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
