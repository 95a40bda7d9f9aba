package valueobjects

import (
	"fmt"
	"time"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var validPriorities = map[Priority]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

// prioritySLAOffsets is the standard creation path's SLA table.
var prioritySLAOffsets = map[Priority]time.Duration{
	PriorityLow:      24 * time.Hour,
	PriorityMedium:   8 * time.Hour,
	PriorityHigh:     4 * time.Hour,
	PriorityCritical: 2 * time.Hour,
}

// helpdeskSLAOffsets is the helpdesk creation path's SLA table. The two
// tables diverged in production (critical 1h vs 2h, medium 24h vs 8h) and
// are kept separate on purpose until the intended values are confirmed.
var helpdeskSLAOffsets = map[Priority]time.Duration{
	PriorityLow:      72 * time.Hour,
	PriorityMedium:   24 * time.Hour,
	PriorityHigh:     4 * time.Hour,
	PriorityCritical: 1 * time.Hour,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// SLAOffset returns the standard service commitment window for the priority.
func (p Priority) SLAOffset() time.Duration {
	offset, ok := prioritySLAOffsets[p]
	if !ok {
		return prioritySLAOffsets[PriorityLow]
	}
	return offset
}

// HelpdeskSLAOffset returns the helpdesk flow's service commitment window.
func (p Priority) HelpdeskSLAOffset() time.Duration {
	offset, ok := helpdeskSLAOffsets[p]
	if !ok {
		return helpdeskSLAOffsets[PriorityLow]
	}
	return offset
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsCritical() bool {
	return p == PriorityCritical
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
