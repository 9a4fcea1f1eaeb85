package model

import (
	"strconv"
	"time"
)

const EventStatusChanged = "status_changed"

// AdminsChannel is the staff-wide broadcast channel.
const AdminsChannel = "admins"

type Event struct {
	ID                   string     `json:"id"`
	Type                 string     `json:"type"`
	OrderID              int64      `json:"orderId"`
	OldStatus            Status     `json:"oldStatus"`
	NewStatus            Status     `json:"newStatus"`
	Timestamp            time.Time  `json:"timestamp"`
	PreparationStartedAt *time.Time `json:"preparationStartedAt,omitempty"`
}

// OrderChannel returns the per-order channel key.
func OrderChannel(id int64) string {
	return "order_" + strconv.FormatInt(id, 10)
}
