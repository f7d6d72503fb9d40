package converter

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntity(t *testing.T) {
	p, err := ToEntity(&ProductModel{
		ID:          "5",
		Name:        "Cemento Portland 50kg",
		Description: "Cemento gris",
		Price:       "12.50",
		Category:    "construcción",
		ImageRef:    "construccion/cemento.jpg",
		Stock:       50,
	})
	require.NoError(t, err)

	assert.Equal(t, "12.50", p.Price.StringFixed(2))
	assert.Equal(t, domain.CategoryConstruction, p.Category)
	assert.Equal(t, 50, p.Stock)
}

func TestToEntity_Invalid(t *testing.T) {
	_, err := ToEntity(&ProductModel{ID: "1", Price: "abc", Category: "Pintura"})
	assert.Error(t, err)

	_, err = ToEntity(&ProductModel{ID: "1", Price: "1.00", Category: "Muebles"})
	assert.ErrorIs(t, err, e.ErrUnknownCategory)

	_, err = ToEntity(&ProductModel{ID: "1", Price: "1.00", Category: "Todos"})
	assert.ErrorIs(t, err, e.ErrUnknownCategory)
}

func TestToArrEntity_KeepsOrder(t *testing.T) {
	products, err := ToArrEntity([]ProductModel{
		{ID: "2", Price: "1", Category: "Jardín"},
		{ID: "1", Price: "2", Category: "Pintura"},
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
}
