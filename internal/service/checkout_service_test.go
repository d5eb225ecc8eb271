package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/Chanisha/E-com-cart/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCheckoutRepo struct{}

func (failingCheckoutRepo) Save(context.Context, *domain.CheckoutRecord) error {
	return fmt.Errorf("database error")
}

func newCheckoutFixture(t *testing.T) (*CheckoutService, *CartService, *repository.MemoryCheckoutRepository) {
	t.Helper()
	cart := NewCartService(newStubCatalog())
	repo := repository.NewMemoryCheckoutRepository()
	return NewCheckoutService(cart, repo, time.Second), cart, repo
}

func TestCheckout_MissingCustomerFields(t *testing.T) {
	sut, cart, repo := newCheckoutFixture(t)
	_, err := cart.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	_, err = sut.Checkout(context.Background(), "", "jane@x.com", nil)
	assert.ErrorIs(t, err, ErrCustomerRequired)
	_, err = sut.Checkout(context.Background(), "Jane", "", nil)
	assert.ErrorIs(t, err, ErrCustomerRequired)

	// Validation failures leave the cart and the repository untouched
	assert.Len(t, cart.Items(), 1)
	assert.Empty(t, repo.Records())
}

func TestCheckout_EmptyCart(t *testing.T) {
	sut, cart, _ := newCheckoutFixture(t)

	_, err := sut.Checkout(context.Background(), "Jane", "jane@x.com", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, cart.Items())
}

func TestCheckout_Success(t *testing.T) {
	sut, cart, repo := newCheckoutFixture(t)
	_, err := cart.AddItem(context.Background(), 1, 5)
	require.NoError(t, err)

	receipt, err := sut.Checkout(context.Background(), "Jane", "jane@x.com", nil)
	require.NoError(t, err)

	assert.Equal(t, "Jane", receipt.Name)
	assert.Equal(t, "jane@x.com", receipt.Email)
	assert.Equal(t, 149.95, receipt.Total)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 5, receipt.Items[0].Qty)

	_, err = time.Parse(time.RFC3339, receipt.Timestamp)
	assert.NoError(t, err)

	// Cart is cleared and the record persisted
	assert.Empty(t, cart.Items())
	records := repo.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 149.95, records[0].Total)
	assert.NotEmpty(t, records[0].ID)
}

func TestCheckout_OverrideItems_ClearsLiveCart(t *testing.T) {
	sut, cart, _ := newCheckoutFixture(t)
	_, err := cart.AddItem(context.Background(), 1, 1)
	require.NoError(t, err)

	override := []domain.CartItem{
		{ProductID: 2, Name: "Dragon Bracelet", Price: 49.99, Qty: 2},
	}

	receipt, err := sut.Checkout(context.Background(), "Jane", "jane@x.com", override)
	require.NoError(t, err)

	assert.Equal(t, 99.98, receipt.Total)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 2, receipt.Items[0].ProductID)

	// The live cart is cleared even though the override list was charged
	assert.Empty(t, cart.Items())
}

func TestCheckout_PersistenceFailure_Swallowed(t *testing.T) {
	cart := NewCartService(newStubCatalog())
	sut := NewCheckoutService(cart, failingCheckoutRepo{}, time.Second)
	_, err := cart.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)

	receipt, err := sut.Checkout(context.Background(), "Jane", "jane@x.com", nil)
	require.NoError(t, err)
	assert.Equal(t, 59.98, receipt.Total)
	assert.Empty(t, cart.Items())
}
