package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutEvent сигнализирует о завершённом (демонстрационном) оформлении заказа.
type CheckoutEvent struct {
	EventID     string
	Items       []LineItem
	Total       decimal.Decimal
	TotalItems  int
	CompletedAt time.Time
}

func NewCheckoutEvent(items []LineItem, total decimal.Decimal, totalItems int, completedAt time.Time) *CheckoutEvent {
	return &CheckoutEvent{
		EventID:     uuid.NewString(),
		Items:       items,
		Total:       total,
		TotalItems:  totalItems,
		CompletedAt: completedAt,
	}
}
