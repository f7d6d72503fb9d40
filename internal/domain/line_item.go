package domain

import "github.com/shopspring/decimal"

// LineItem — позиция корзины: товар и его количество (всегда >= 1).
type LineItem struct {
	Product
	Quantity int
}

// Subtotal возвращает price × quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
