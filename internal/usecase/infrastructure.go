package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// GenerativeInfra — клиент генеративной модели.
type GenerativeInfra interface {
	Generate(ctx context.Context, req *GenerateReq) (string, error)
}

// CheckoutPublisher сообщает внешним системам об оформленном заказе.
type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event *domain.CheckoutEvent) error
}

// ImagesInfra превращает ссылку на изображение товара в URL, пригодный для браузера.
type ImagesInfra interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}
