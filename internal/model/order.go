package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	OrderStatusReceived     Status = "received"
	OrderStatusPreparing    Status = "preparing"
	OrderStatusReady        Status = "ready"
	OrderStatusCompleted    Status = "completed"
	OrderStatusAcknowledged Status = "acknowledged"
	OrderStatusCancelled    Status = "cancelled"
)

// OpenStatuses are the statuses still advanced by the queue sweep.
var OpenStatuses = []Status{OrderStatusReceived, OrderStatusPreparing}

var transitions = map[Status][]Status{
	OrderStatusReceived:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {OrderStatusAcknowledged},
}

// CanTransition reports whether an order in status from may move to status to.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == OrderStatusReceived || s == OrderStatusPreparing
}

func (s Status) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusAcknowledged || s == OrderStatusCancelled
}

func (s Status) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusAcknowledged, OrderStatusCancelled:
		return true
	}
	return false
}

// Priority sorts ascending: high orders come first. Zero means not computed yet.
type Priority int

const (
	PriorityUnset Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return "unset"
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	switch string(b) {
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	case "low":
		*p = PriorityLow
	case "unset":
		*p = PriorityUnset
	default:
		return fmt.Errorf("unknown priority %q", b)
	}
	return nil
}

type OrderItem struct {
	FoodItemID    int64  `json:"foodItemID"`
	FoodItemName  string `json:"foodItemName"`
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization,omitempty"`
}

type Order struct {
	ID                   int64           `json:"id"`
	UserID               int64           `json:"userID"`
	PickupDeadline       time.Time       `json:"pickupDeadline"`
	PlacedAt             time.Time       `json:"placedAt"`
	Status               Status          `json:"status"`
	Priority             Priority        `json:"priority"`
	EstimatedPrepMinutes int             `json:"estimatedPrepMinutes"`
	PreparationStartedAt *time.Time      `json:"preparationStartedAt,omitempty"`
	Archived             bool            `json:"archived"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	Items                []OrderItem     `json:"items,omitempty"`
}

// PrepDuration is the estimated preparation time as a duration.
func (o Order) PrepDuration() time.Duration {
	return time.Duration(o.EstimatedPrepMinutes) * time.Minute
}
