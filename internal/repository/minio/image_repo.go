package minio

import (
	"context"
	"net/url"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует репозиторий изображений поверх MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignGet возвращает подписанную GET-ссылку на объект key из бакета изображений.
func (i *ImageRepo) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, ttl, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}
