package catalog

import (
	"strings"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []domain.Product) []string {
	res := make([]string, len(products))
	for i, p := range products {
		res[i] = p.ID
	}
	return res
}

func TestFilter_SearchTaladro(t *testing.T) {
	res := Filter(SeedProducts(), "taladro", domain.CategoryAll)
	require.Len(t, res, 1)
	assert.Equal(t, "1", res[0].ID)
	assert.Equal(t, "Taladro Percutor 750W", res[0].Name)
}

func TestFilter_NoCriteriaReturnsAll(t *testing.T) {
	res := Filter(SeedProducts(), "", domain.CategoryAll)
	assert.Equal(t, ids(SeedProducts()), ids(res))
}

func TestFilter_Category(t *testing.T) {
	res := Filter(SeedProducts(), "", domain.CategoryPaint)
	assert.Equal(t, []string{"3", "4"}, ids(res))
}

func TestFilter_CategoryAndSearch(t *testing.T) {
	// "concreto" встречается в описаниях товаров 1 и 9, оба — Herramientas
	assert.Equal(t, []string{"1", "9"}, ids(Filter(SeedProducts(), "CONCRETO", domain.CategoryAll)))
	assert.Equal(t, []string{"1", "9"}, ids(Filter(SeedProducts(), "concreto", domain.CategoryTools)))
	assert.Empty(t, Filter(SeedProducts(), "concreto", domain.CategoryPaint))
}

func TestFilter_MatchesDescription(t *testing.T) {
	res := Filter(SeedProducts(), "salpicaduras", domain.CategoryAll)
	assert.Equal(t, []string{"4"}, ids(res))
}

// Результат — подпоследовательность каталога, и каждый элемент удовлетворяет обоим предикатам.
func TestFilter_SubsequenceProperty(t *testing.T) {
	products := SeedProducts()
	terms := []string{"", "a", "de", "m", "PRO", "cemento", "xyz", "10"}
	categories := append([]domain.Category{domain.CategoryAll}, domain.Categories()...)

	for _, term := range terms {
		for _, cat := range categories {
			res := Filter(products, term, cat)

			j := 0
			for _, p := range res {
				for j < len(products) && products[j].ID != p.ID {
					j++
				}
				require.Less(t, j, len(products), "order broken for term=%q category=%q", term, cat)
				j++

				if cat != domain.CategoryAll {
					assert.Equal(t, cat, p.Category)
				}
				if term != "" {
					lt := strings.ToLower(term)
					assert.True(t,
						strings.Contains(strings.ToLower(p.Name), lt) || strings.Contains(strings.ToLower(p.Description), lt),
						"product %s does not match %q", p.ID, term)
				}
			}

			// ни один подходящий товар не потерян
			expected := 0
			for _, p := range products {
				lt := strings.ToLower(term)
				if (cat == domain.CategoryAll || p.Category == cat) &&
					(term == "" || strings.Contains(strings.ToLower(p.Name), lt) || strings.Contains(strings.ToLower(p.Description), lt)) {
					expected++
				}
			}
			assert.Len(t, res, expected)
		}
	}
}
