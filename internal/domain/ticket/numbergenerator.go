package ticket

import (
	"context"
	"fmt"
	"sync"

	"fieldserve/internal/shared/biztime"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator issues daily-sequenced ticket numbers of the form
// FS-YYYYMMDD-NNNN. Counters reset per business day and are process-local.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := biztime.DateKey(biztime.NowUTC())

	counter := g.counters[dateKey] + 1
	g.counters[dateKey] = counter

	return fmt.Sprintf("FS-%s-%04d", dateKey, counter), nil
}
