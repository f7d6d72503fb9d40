package catalog

import (
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// Filter возвращает товары, подходящие под категорию и поисковую строку, сохраняя исходный порядок.
// CategoryAll пропускает любую категорию; пустая строка поиска пропускает любой товар.
// Поиск — регистронезависимое вхождение подстроки в название или описание.
func Filter(products []domain.Product, searchTerm string, category domain.Category) []domain.Product {
	term := strings.ToLower(searchTerm)

	res := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != domain.CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		res = append(res, p)
	}

	return res
}
