package domain

import (
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// Category — категория товара. Набор значений закрыт.
type Category string

const (
	CategoryTools        Category = "Herramientas"
	CategoryConstruction Category = "Construcción"
	CategoryPaint        Category = "Pintura"
	CategoryPlumbing     Category = "Fontanería"
	CategoryElectrical   Category = "Electricidad"
	CategoryGarden       Category = "Jardín"

	// CategoryAll — синтетическое значение фильтра, у товаров не встречается.
	CategoryAll Category = "Todos"
)

// Categories возвращает категории товаров в порядке отображения (без CategoryAll).
func Categories() []Category {
	return []Category{
		CategoryTools,
		CategoryConstruction,
		CategoryPaint,
		CategoryPlumbing,
		CategoryElectrical,
		CategoryGarden,
	}
}

// IsValid сообщает, является ли значение одной из категорий товаров.
func (c Category) IsValid() bool {
	for _, cat := range Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory разбирает значение фильтра. Пустая строка означает CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}

	for _, cat := range Categories() {
		if strings.EqualFold(s, string(cat)) {
			return cat, nil
		}
	}

	return "", e.Wrap(s, e.ErrUnknownCategory)
}
