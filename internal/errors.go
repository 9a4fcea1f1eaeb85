package internal

import (
	"errors"
	"fmt"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("order status changed concurrently")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidToken      = errors.New("invalid token")

	ErrQueueFull        = errors.New("notification queue is full")
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
)

// InvalidTransitionError tells the caller which status the order is actually in.
type InvalidTransitionError struct {
	OrderID int64
	From    model.Status
	To      model.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %d: cannot move from %s to %s", e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
