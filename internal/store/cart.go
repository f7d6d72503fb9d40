package store

import (
	"math"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Функции корзины не изменяют входной срез: при изменении возвращается новый,
// поэтому ранее выданные снимки состояния остаются неизменными.

// addLineItem увеличивает количество существующей позиции на 1 или добавляет новую с количеством 1.
func addLineItem(items []domain.LineItem, product domain.Product) []domain.LineItem {
	res := make([]domain.LineItem, len(items), len(items)+1)
	copy(res, items)

	for i := range res {
		if res[i].ID == product.ID {
			res[i].Quantity++
			return res
		}
	}

	return append(res, domain.LineItem{Product: product, Quantity: 1})
}

// updateLineItemQuantity устанавливает quantity = max(1, quantity+delta).
// Возвращает false, если позиции нет или количество не изменилось.
func updateLineItemQuantity(items []domain.LineItem, id string, delta int) ([]domain.LineItem, bool) {
	for i := range items {
		if items[i].ID != id {
			continue
		}

		quantity := max(1, addQuantity(items[i].Quantity, delta))
		if quantity == items[i].Quantity {
			return items, false
		}

		res := make([]domain.LineItem, len(items))
		copy(res, items)
		res[i].Quantity = quantity
		return res, true
	}

	return items, false
}

// addQuantity складывает с насыщением вместо переполнения int.
func addQuantity(quantity, delta int) int {
	switch {
	case delta > 0 && quantity > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && quantity < math.MinInt-delta:
		return math.MinInt
	}
	return quantity + delta
}

// removeLineItem удаляет позицию. Возвращает false, если позиции нет.
func removeLineItem(items []domain.LineItem, id string) ([]domain.LineItem, bool) {
	for i := range items {
		if items[i].ID != id {
			continue
		}

		res := make([]domain.LineItem, 0, len(items)-1)
		res = append(res, items[:i]...)
		return append(res, items[i+1:]...), true
	}

	return items, false
}

// Total возвращает сумму price × quantity по всем позициям.
func Total(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalItems возвращает суммарное количество единиц товара в корзине.
func TotalItems(items []domain.LineItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}
