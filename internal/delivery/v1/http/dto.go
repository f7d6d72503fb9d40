package http

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/store"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// REQUESTS

type SetFiltersRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequest struct {
	Delta *int `json:"delta"`
}

type SetPanelRequest struct {
	Open *bool `json:"open"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// RESPONSES

// ProductResponse — товар каталога. Цены передаются строками с двумя знаками после запятой.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock"`
}

type CartItemResponse struct {
	ProductResponse
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Total      string             `json:"total"`
	TotalItems int                `json:"total_items"`
	Open       bool               `json:"open"`
}

type CheckoutResponse struct {
	Message    string             `json:"message"`
	Items      []CartItemResponse `json:"items"`
	Total      string             `json:"total"`
	TotalItems int                `json:"total_items"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type PanelsResponse struct {
	CartOpen bool `json:"cart_open"`
	ChatOpen bool `json:"chat_open"`
	MenuOpen bool `json:"menu_open"`
}

type FiltersResponse struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

// StateResponse — полный снимок витрины. Version растёт с каждым изменением.
type StateResponse struct {
	Version         uint64                `json:"version"`
	Filters         FiltersResponse       `json:"filters"`
	VisibleProducts []ProductResponse     `json:"visible_products"`
	Cart            CartResponse          `json:"cart"`
	Messages        []ChatMessageResponse `json:"messages"`
	IsSending       bool                  `json:"is_sending"`
	Panels          PanelsResponse        `json:"panels"`
}

// MAPPERS

func toProductResponse(p usecase.ProductView) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category.String(),
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
	}
}

func toProductResponses(products []usecase.ProductView) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res
}

func toCartItemResponses(items []usecase.CartLineView) []CartItemResponse {
	res := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, CartItemResponse{
			ProductResponse: toProductResponse(item.ProductView),
			Quantity:        item.Quantity,
			Subtotal:        item.Subtotal.StringFixed(2),
		})
	}
	return res
}

func toCartResponse(cart *usecase.CartView) CartResponse {
	return CartResponse{
		Items:      toCartItemResponses(cart.Items),
		Total:      cart.Total.StringFixed(2),
		TotalItems: cart.TotalItems,
		Open:       cart.Open,
	}
}

func toCheckoutResponse(res *usecase.CheckoutRes) CheckoutResponse {
	return CheckoutResponse{
		Message:    res.Message,
		Items:      toCartItemResponses(res.Items),
		Total:      res.Total.StringFixed(2),
		TotalItems: res.TotalItems,
	}
}

func toChatMessageResponse(m domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func toChatMessageResponses(messages []domain.ChatMessage) []ChatMessageResponse {
	res := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, toChatMessageResponse(m))
	}
	return res
}

func toPanelsResponse(p store.Panels) PanelsResponse {
	return PanelsResponse{
		CartOpen: p.CartOpen,
		ChatOpen: p.ChatOpen,
		MenuOpen: p.MenuOpen,
	}
}

func toCategoryResponses(categories []domain.Category) []string {
	res := make([]string, 0, len(categories))
	for _, c := range categories {
		res = append(res, c.String())
	}
	return res
}

func toStateResponse(view *usecase.StateView) StateResponse {
	st := view.State
	return StateResponse{
		Version: st.Version,
		Filters: FiltersResponse{
			Search:   st.SearchTerm,
			Category: st.Category.String(),
		},
		VisibleProducts: toProductResponses(view.VisibleProducts),
		Cart:            toCartResponse(view.Cart),
		Messages:        toChatMessageResponses(st.Messages),
		IsSending:       st.IsSending,
		Panels:          toPanelsResponse(st.Panels),
	}
}
