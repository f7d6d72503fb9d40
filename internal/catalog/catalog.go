// Package catalog содержит неизменяемое хранилище каталога товаров и фильтрацию по нему.
package catalog

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// Catalog — проверенный, неизменяемый список товаров. Безопасен для конкурентного чтения.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New проверяет товары и строит каталог. Порядок товаров сохраняется.
func New(products []domain.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, e.ErrEmptyCatalog
	}

	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if err := validate(p); err != nil {
			return nil, e.Wrap("product "+p.ID, err)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, e.Wrap(p.ID, e.ErrDuplicateProductID)
		}
		c.byID[p.ID] = i
	}

	return c, nil
}

// Products возвращает копию всех товаров в исходном порядке.
func (c *Catalog) Products() []domain.Product {
	res := make([]domain.Product, len(c.products))
	copy(res, c.products)
	return res
}

// ByID ищет товар по идентификатору.
func (c *Catalog) ByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Filter применяет Filter к товарам каталога.
func (c *Catalog) Filter(searchTerm string, category domain.Category) []domain.Product {
	return Filter(c.products, searchTerm, category)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func validate(p domain.Product) error {
	switch {
	case p.ID == "":
		return e.ErrEmptyProductID
	case p.Price.IsNegative():
		return e.ErrNegativePrice
	case p.Stock < 0:
		return e.ErrNegativeStock
	case !p.Category.IsValid():
		return e.Wrap(p.Category.String(), e.ErrUnknownCategory)
	}
	return nil
}
