package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога. Создаётся один раз при старте и не изменяется.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	ImageRef    string // абсолютный URL либо ключ объекта в хранилище изображений
	Stock       int    // не ограничивает покупку
}

func NewProduct(id, name, description string, price decimal.Decimal, category Category, imageRef string, stock int) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageRef:    imageRef,
		Stock:       stock,
	}
}
