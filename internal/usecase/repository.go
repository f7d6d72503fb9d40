package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// ProductRepository — постоянный источник каталога.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// CacheRepository хранит снимок каталога. GetCatalog возвращает e.ErrCacheMiss, если снимка нет.
type CacheRepository interface {
	GetCatalog(ctx context.Context) ([]domain.Product, error)
	SetCatalog(ctx context.Context, products []domain.Product) error
}

// ImageRepository выдаёт временные ссылки на объекты хранилища изображений.
type ImageRepository interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
