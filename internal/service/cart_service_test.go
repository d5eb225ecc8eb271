package service

import (
	"context"
	"testing"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products map[int]domain.Product
}

func (s *stubCatalog) FindProduct(_ context.Context, id int) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, ErrProductNotFound
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{products: map[int]domain.Product{
		1: {ID: 1, Name: "Bag", Price: 29.99},
		2: {ID: 2, Name: "Dragon Bracelet", Price: 49.99},
	}}
}

func TestAddItem_NewLine_CopiesNameAndPrice(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	cart, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].ProductID)
	assert.Equal(t, "Bag", cart[0].Name)
	assert.Equal(t, 29.99, cart[0].Price)
	assert.Equal(t, 2, cart[0].Qty)
}

func TestAddItem_ExistingLine_IncrementsQty(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)
	cart, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Qty)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	cart, err := sut.AddItem(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, cart)
	assert.Empty(t, sut.Items())
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.AddItem(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = sut.AddItem(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidProductID)
	assert.Empty(t, sut.Items())
}

func TestUpdateQuantity_SetsExactValue(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	cart, err := sut.UpdateQuantity(1, 5)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Qty)
}

func TestUpdateQuantity_InvalidQuantity_CartUnchanged(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	_, err = sut.UpdateQuantity(1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = sut.UpdateQuantity(1, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}

func TestUpdateQuantity_MissingLine(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.UpdateQuantity(1, 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem_PreservesOrder(t *testing.T) {
	catalog := newStubCatalog()
	catalog.products[3] = domain.Product{ID: 3, Name: "Jacket", Price: 69.99}
	sut := NewCartService(catalog)

	for _, id := range []int{1, 2, 3} {
		_, err := sut.AddItem(context.Background(), id, 1)
		require.NoError(t, err)
	}

	cart, err := sut.RemoveItem(2)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].ProductID)
	assert.Equal(t, 3, cart[1].ProductID)
}

func TestRemoveItem_Missing_NoMutation(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	_, err = sut.RemoveItem(99)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Len(t, sut.Items(), 1)
}

func TestTotal_RecomputedEachCall(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	assert.Equal(t, 0.0, sut.Total())

	_, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 59.98, sut.Total())

	_, err = sut.UpdateQuantity(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 149.95, sut.Total())

	_, err = sut.AddItem(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 199.94, sut.Total())

	_, err = sut.RemoveItem(2)
	require.NoError(t, err)
	assert.Equal(t, 149.95, sut.Total())
}

func TestClear_EmptiesCart(t *testing.T) {
	sut := NewCartService(newStubCatalog())

	_, err := sut.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	sut.Clear()
	assert.Empty(t, sut.Items())
	assert.Equal(t, 0.0, sut.Total())
}
