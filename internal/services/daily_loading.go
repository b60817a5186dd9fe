package services

import (
	"fmt"

	"nut-orders-backend/internal/models"
)

type loadingOp int

const (
	loadingAppend loadingOp = iota + 1
	loadingRemove
)

// LoadingEdit is a single change to an order's daily loading sequence.
type LoadingEdit struct {
	op       loadingOp
	quantity int64
	index    int
}

// AppendLoading records qty pieces for a new loading day.
func AppendLoading(qty int64) LoadingEdit {
	return LoadingEdit{op: loadingAppend, quantity: qty}
}

// RemoveLoadingAt drops the day at index.
func RemoveLoadingAt(index int) LoadingEdit {
	return LoadingEdit{op: loadingRemove, index: index}
}

func (e LoadingEdit) validate() error {
	if e.op == loadingAppend && e.quantity <= 0 {
		return fmt.Errorf("%w: got %d", models.ErrInvalidQuantity, e.quantity)
	}
	return nil
}

// ApplyDailyLoadingEdit returns the new sequence; current is not modified.
// Appends must be positive. Removing an index that no longer exists is a
// no-op, so the last write wins.
func ApplyDailyLoadingEdit(current []int64, edit LoadingEdit) ([]int64, error) {
	switch edit.op {
	case loadingAppend:
		if err := edit.validate(); err != nil {
			return nil, err
		}
		next := make([]int64, 0, len(current)+1)
		next = append(next, current...)
		return append(next, edit.quantity), nil
	case loadingRemove:
		next := make([]int64, 0, len(current))
		for i, qty := range current {
			if i != edit.index {
				next = append(next, qty)
			}
		}
		return next, nil
	}
	return nil, fmt.Errorf("unknown loading edit")
}

// SummarizeLoading builds the per-day chart series and totals for an order.
func SummarizeLoading(order *models.Order) models.LoadingSummaryResponse {
	summary := models.LoadingSummaryResponse{
		OrderID:       order.ID.String(),
		OrderQuantity: order.Quantity,
		Days:          make([]models.LoadingPoint, 0, len(order.DailyLoading)),
	}
	for i, qty := range order.DailyLoading {
		summary.TotalLoaded += qty
		summary.Days = append(summary.Days, models.LoadingPoint{
			Day:      fmt.Sprintf("Day %d", i+1),
			Quantity: qty,
		})
	}
	if remaining := order.Quantity - summary.TotalLoaded; remaining > 0 {
		summary.Remaining = remaining
	}
	return summary
}
