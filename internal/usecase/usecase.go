package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/store"
)

// CatalogUC загружает каталог при старте приложения.
type CatalogUC interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}

// AssistantUC отвечает на сообщение пользователя с учётом истории диалога.
// Ошибки не возвращаются: любой сбой превращается в текст для пользователя.
type AssistantUC interface {
	Converse(ctx context.Context, text string, history []domain.Turn) string
}

// StorefrontUC — все намерения пользователя витрины.
type StorefrontUC interface {
	State() store.State
	Subscribe(l store.Listener) func()

	Products(ctx context.Context, req *ListProductsReq) ([]ProductView, error)
	Product(ctx context.Context, id string) (*ProductView, error)
	View(ctx context.Context, st store.State) *StateView
	Categories() []domain.Category
	SetFilters(req *SetFiltersReq) (store.State, error)
	ResetFilters() store.State

	Cart(ctx context.Context) *CartView
	AddToCart(ctx context.Context, productID string) (*CartView, error)
	UpdateQuantity(ctx context.Context, productID string, delta int) *CartView
	RemoveFromCart(ctx context.Context, productID string) *CartView
	Checkout(ctx context.Context) *CheckoutRes

	SetPanel(panel string, open bool) (store.Panels, error)

	Messages() []domain.ChatMessage
	SendMessage(ctx context.Context, text string) (domain.ChatMessage, error)
	Wait(ctx context.Context) error
}
