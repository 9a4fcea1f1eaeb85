package internal

import (
	"time"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

const (
	highPriorityWindow   = 30 * time.Minute
	mediumPriorityWindow = 60 * time.Minute
)

// CalculatePriority maps the time left until pickup to a priority tier.
// Exactly 30 or 60 minutes fall into the more urgent tier.
func CalculatePriority(deadline, now time.Time) model.Priority {
	if deadline.IsZero() {
		return model.PriorityLow
	}

	until := deadline.Sub(now)
	switch {
	case until <= highPriorityWindow:
		return model.PriorityHigh
	case until <= mediumPriorityWindow:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
