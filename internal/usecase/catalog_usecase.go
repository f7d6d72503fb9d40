package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const cacheWriteTimeout = 500 * time.Millisecond

// CatalogUseCase выбирает источник каталога: кэш Redis, затем Postgres, затем встроенный набор.
// productRepo и cacheRepo могут быть nil, если бэкенд не настроен.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, cacheRepo CacheRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// LoadCatalog возвращает проверенный каталог. Ошибка возвращается только если товары из базы
// не проходят проверку: недоступность бэкендов не мешает старту.
func (c *CatalogUseCase) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	const op = "CatalogUseCase.LoadCatalog"

	if cat, ok := c.fromCache(ctx); ok {
		c.logger.Infof("catalog loaded from cache: %d products", cat.Len())
		return cat, nil
	}

	if c.productRepo != nil {
		products, err := c.productRepo.ListProducts(ctx)
		switch {
		case err != nil:
			c.logger.Warnf("failed to load catalog from database, using built-in catalog: %v", e.Wrap(op, err))
		case len(products) == 0:
			c.logger.Warnf("products table is empty, using built-in catalog")
		default:
			cat, err := catalog.New(products)
			if err != nil {
				return nil, e.Wrap(op, err)
			}
			c.cacheInBackground(products)
			c.logger.Infof("catalog loaded from database: %d products", cat.Len())
			return cat, nil
		}
	}

	cat, err := catalog.New(catalog.SeedProducts())
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	c.logger.Infof("catalog loaded from built-in set: %d products", cat.Len())
	return cat, nil
}

func (c *CatalogUseCase) fromCache(ctx context.Context) (*catalog.Catalog, bool) {
	const op = "CatalogUseCase.fromCache"

	if c.cacheRepo == nil {
		return nil, false
	}

	products, err := c.cacheRepo.GetCatalog(ctx)
	if err != nil {
		if errors.Is(err, e.ErrCacheMiss) {
			c.logger.Debugf("catalog cache miss")
		} else {
			c.logger.Warnf("catalog cache read failed: %v", e.Wrap(op, err))
		}
		return nil, false
	}

	cat, err := catalog.New(products)
	if err != nil {
		c.logger.Warnf("cached catalog is invalid, ignoring: %v", e.Wrap(op, err))
		return nil, false
	}

	return cat, true
}

// cacheInBackground сохраняет каталог из базы в кэш, не задерживая старт.
func (c *CatalogUseCase) cacheInBackground(products []domain.Product) {
	const op = "CatalogUseCase.cacheInBackground"

	if c.cacheRepo == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		if err := c.cacheRepo.SetCatalog(bgCtx, products); err != nil {
			c.logger.Warnf("Failed to cache catalog in background: %v", e.Wrap(op, err))
		}
	}()
}
