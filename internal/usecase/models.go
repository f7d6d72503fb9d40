package usecase

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/store"
	"github.com/shopspring/decimal"
)

// CATALOG USECASE

// ListProductsReq — фильтр для списка товаров без изменения состояния витрины.
type ListProductsReq struct {
	Search   string
	Category string
}

// SetFiltersReq — новая строка поиска и категория витрины.
type SetFiltersReq struct {
	Search   string
	Category string
}

// ProductView — товар с разрешённой ссылкой на изображение.
type ProductView struct {
	domain.Product
	ImageURL string
}

// STOREFRONT USECASE

// CartLineView — позиция корзины с подсчитанной суммой.
type CartLineView struct {
	ProductView
	Quantity int
	Subtotal decimal.Decimal
}

// CartView — содержимое корзины и производные величины.
type CartView struct {
	Items      []CartLineView
	Total      decimal.Decimal
	TotalItems int
	Open       bool
}

// StateView — снимок витрины вместе с отфильтрованным каталогом и корзиной.
type StateView struct {
	State           store.State
	VisibleProducts []ProductView
	Cart            *CartView
}

// CheckoutRes — результат оформления заказа.
type CheckoutRes struct {
	Message    string
	Items      []CartLineView
	Total      decimal.Decimal
	TotalItems int
}

// INFRASTRUCTURE

// GenerateReq — один запрос к генеративной модели.
type GenerateReq struct {
	SystemInstruction string
	History           []domain.Turn
	Text              string
	Temperature       float32
}

// MAPPERS

func NewListProductsReq(search, category string) *ListProductsReq {
	return &ListProductsReq{Search: search, Category: category}
}

func NewSetFiltersReq(search, category string) *SetFiltersReq {
	return &SetFiltersReq{Search: search, Category: category}
}

func NewProductView(p domain.Product, imageURL string) ProductView {
	return ProductView{Product: p, ImageURL: imageURL}
}

func NewGenerateReq(systemInstruction string, history []domain.Turn, text string, temperature float32) *GenerateReq {
	return &GenerateReq{
		SystemInstruction: systemInstruction,
		History:           history,
		Text:              text,
		Temperature:       temperature,
	}
}
