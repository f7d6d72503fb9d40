package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

func ToRedisModel(products []domain.Product) *CatalogRedisModel {
	models := make([]ProductRedisModel, 0, len(products))
	for _, p := range products {
		models = append(models, ProductRedisModel{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
			Category:    p.Category.String(),
			ImageRef:    p.ImageRef,
			Stock:       p.Stock,
		})
	}

	return &CatalogRedisModel{Products: models}
}

// ToEntities проверяет только формат полей; целостность каталога проверяет catalog.New.
func ToEntities(model *CatalogRedisModel) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(model.Products))
	for _, m := range model.Products {
		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		products = append(products, *domain.NewProduct(
			m.ID, m.Name, m.Description, price, domain.Category(m.Category), m.ImageRef, m.Stock,
		))
	}

	return products, nil
}
