package store

import (
	"math"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price string) domain.Product {
	return *domain.NewProduct(id, "p"+id, "", decimal.RequireFromString(price), domain.CategoryTools, "", 1)
}

func TestAddLineItem_SameProductTwice(t *testing.T) {
	p := product("1", "85.99")

	items := addLineItem(nil, p)
	items = addLineItem(items, p)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddLineItem_KeepsInsertionOrder(t *testing.T) {
	items := addLineItem(nil, product("2", "1"))
	items = addLineItem(items, product("1", "1"))
	items = addLineItem(items, product("2", "1"))

	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
}

func TestAddLineItem_DoesNotMutateInput(t *testing.T) {
	before := addLineItem(nil, product("1", "1"))
	after := addLineItem(before, product("1", "1"))

	assert.Equal(t, 1, before[0].Quantity)
	assert.Equal(t, 2, after[0].Quantity)
}

func TestUpdateLineItemQuantity_ClampedAtOne(t *testing.T) {
	items := []domain.LineItem{{Product: product("1", "1"), Quantity: 3}}

	res, changed := updateLineItemQuantity(items, "1", -100)
	require.True(t, changed)
	assert.Equal(t, 1, res[0].Quantity)

	res, changed = updateLineItemQuantity(res, "1", -1)
	assert.False(t, changed)
	assert.Equal(t, 1, res[0].Quantity)
}

func TestUpdateLineItemQuantity_Increment(t *testing.T) {
	items := []domain.LineItem{{Product: product("1", "1"), Quantity: 1}}

	res, changed := updateLineItemQuantity(items, "1", 4)
	require.True(t, changed)
	assert.Equal(t, 5, res[0].Quantity)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateLineItemQuantity_AbsentID(t *testing.T) {
	items := []domain.LineItem{{Product: product("1", "1"), Quantity: 2}}

	res, changed := updateLineItemQuantity(items, "404", 1)
	assert.False(t, changed)
	assert.Equal(t, items, res)
}

func TestRemoveLineItem(t *testing.T) {
	items := []domain.LineItem{
		{Product: product("1", "1"), Quantity: 1},
		{Product: product("2", "1"), Quantity: 2},
		{Product: product("3", "1"), Quantity: 3},
	}

	res, changed := removeLineItem(items, "2")
	require.True(t, changed)
	assert.Equal(t, []domain.LineItem{items[0], items[2]}, res)
	assert.Len(t, items, 3)
}

func TestRemoveLineItem_AbsentIDLeavesCartUnchanged(t *testing.T) {
	items := []domain.LineItem{
		{Product: product("1", "1"), Quantity: 1},
		{Product: product("2", "1"), Quantity: 2},
	}

	res, changed := removeLineItem(items, "404")
	assert.False(t, changed)
	assert.Equal(t, items, res)
	assert.Same(t, &items[0], &res[0])
}

func TestTotal(t *testing.T) {
	items := []domain.LineItem{
		{Product: product("1", "85.99"), Quantity: 1},
		{Product: product("4", "8.90"), Quantity: 2},
	}

	assert.Equal(t, "103.79", Total(items).StringFixed(2))
	assert.True(t, decimal.RequireFromString("103.79").Equal(Total(items)))
	assert.Equal(t, 3, TotalItems(items))
}

func TestTotal_Empty(t *testing.T) {
	assert.True(t, Total(nil).IsZero())
	assert.Equal(t, 0, TotalItems(nil))
}

func TestUpdateLineItemQuantity_SaturatesOnOverflow(t *testing.T) {
	items := []domain.LineItem{{Product: product("1", "1"), Quantity: 3}}

	res, changed := updateLineItemQuantity(items, "1", math.MaxInt)
	require.True(t, changed)
	assert.Equal(t, math.MaxInt, res[0].Quantity)

	res, changed = updateLineItemQuantity(res, "1", math.MaxInt)
	assert.False(t, changed)
	assert.Equal(t, math.MaxInt, res[0].Quantity)

	res, changed = updateLineItemQuantity(items, "1", math.MinInt)
	require.True(t, changed)
	assert.Equal(t, 1, res[0].Quantity)
}
