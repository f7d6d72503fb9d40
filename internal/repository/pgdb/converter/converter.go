package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// ToEntity переводит запись таблицы в товар каталога.
func ToEntity(model *ProductModel) (*domain.Product, error) {
	price, err := decimal.NewFromString(model.Price)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	category, err := domain.ParseCategory(model.Category)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if category == domain.CategoryAll {
		return nil, e.Wrap(model.ID, e.ErrUnknownCategory)
	}

	return domain.NewProduct(model.ID, model.Name, model.Description, price, category, model.ImageRef, model.Stock), nil
}

// ToArrEntity сохраняет порядок записей.
func ToArrEntity(models []ProductModel) ([]domain.Product, error) {
	res := make([]domain.Product, 0, len(models))
	for i := range models {
		p, err := ToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		res = append(res, *p)
	}

	return res, nil
}
