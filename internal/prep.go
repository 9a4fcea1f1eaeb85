package internal

import "github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"

const (
	baseItemMinutes      = 5
	perUnitMinutes       = 2
	customizationMinutes = 3
)

// EstimatePrepMinutes returns the preparation estimate for the given line items.
// An order without items yields 0.
func EstimatePrepMinutes(items []model.OrderItem) int {
	total := 0
	for _, it := range items {
		m := baseItemMinutes + perUnitMinutes*it.Quantity
		if it.Customization != "" {
			m += customizationMinutes
		}
		total += m
	}
	return total
}
