package kafka

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type checkoutMessage struct {
	EventID     string                `json:"event_id"`
	CompletedAt time.Time             `json:"completed_at"`
	Total       string                `json:"total"`
	TotalItems  int                   `json:"total_items"`
	Items       []checkoutItemMessage `json:"items"`
}

type checkoutItemMessage struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

func toCheckoutMessage(event *domain.CheckoutEvent) checkoutMessage {
	items := make([]checkoutItemMessage, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, checkoutItemMessage{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price.StringFixed(2),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().StringFixed(2),
		})
	}

	return checkoutMessage{
		EventID:     event.EventID,
		CompletedAt: event.CompletedAt.UTC(),
		Total:       event.Total.StringFixed(2),
		TotalItems:  event.TotalItems,
		Items:       items,
	}
}
