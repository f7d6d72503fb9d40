package minio

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/infrastructure"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type presigned struct {
	url       string
	refreshAt time.Time
}

// MinioInfrastructure превращает ключи объектов в подписанные ссылки.
// Ссылка переиспользуется до середины срока жизни, чтобы листинг каталога не подписывал заново каждый товар.
type MinioInfrastructure struct {
	imageRepo usecase.ImageRepository
	cfg       *cfg.MinIOCfg
	logger    logger.Logger
	now       func() time.Time

	mu    sync.Mutex
	cache map[string]presigned
}

func NewMinioInfrastructure(imageRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *MinioInfrastructure {
	return &MinioInfrastructure{
		imageRepo: imageRepo,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		cache:     make(map[string]presigned),
	}
}

// ResolveImage возвращает абсолютные URL без изменений, остальные ссылки считает ключами в бакете.
func (m *MinioInfrastructure) ResolveImage(ctx context.Context, ref string) (string, error) {
	const op = "MinioInfrastructure.ResolveImage"

	if ref == "" || infrastructure.IsRemoteURL(ref) {
		return ref, nil
	}

	now := m.now()

	m.mu.Lock()
	cached, ok := m.cache[ref]
	m.mu.Unlock()
	if ok && now.Before(cached.refreshAt) {
		return cached.url, nil
	}

	url, err := m.imageRepo.PresignGet(ctx, ref, m.cfg.PresignTTL)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	m.mu.Lock()
	m.cache[ref] = presigned{url: url, refreshAt: now.Add(m.cfg.PresignTTL / 2)}
	m.mu.Unlock()

	m.logger.Debugf("presigned image %s", ref)
	return url, nil
}
