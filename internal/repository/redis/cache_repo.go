package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CatalogKey — ключ снимка каталога.
const CatalogKey = "catalog:products"

type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCatalog возвращает e.ErrCacheMiss, если снимка нет. Повреждённый снимок удаляется и тоже считается промахом.
func (c *CacheRepo) GetCatalog(ctx context.Context) ([]domain.Product, error) {
	data, err := c.client.Client.Get(ctx, CatalogKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrCacheMiss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CatalogRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping catalog snapshot: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(ctx)
		return nil, e.ErrCacheMiss
	}

	products, err := converter.ToEntities(&model)
	if err != nil {
		c.logger.Warnf("Invalid catalog snapshot, dropping: %v", err)
		c.drop(ctx)
		return nil, e.ErrCacheMiss
	}

	return products, nil
}

// SetCatalog сохраняет снимок с TTL и джиттером.
func (c *CacheRepo) SetCatalog(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(converter.ToRedisModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ttl := jitter.Duration(c.cfg.CatalogTTL, jitter.DefaultJitter)
	if err := c.client.Client.Set(ctx, CatalogKey, data, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) drop(ctx context.Context) {
	if err := c.client.Client.Del(ctx, CatalogKey).Err(); err != nil {
		c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}
