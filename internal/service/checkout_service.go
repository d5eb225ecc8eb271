package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/Chanisha/E-com-cart/internal/repository"
)

// CartStore is the slice of the cart the checkout flow needs.
type CartStore interface {
	Items() []domain.CartItem
	Clear()
}

// CheckoutService converts a cart into a receipt. Persisting the checkout
// record is best-effort: a failed save is logged and never surfaces.
type CheckoutService struct {
	cart        CartStore
	repo        repository.CheckoutRepository
	saveTimeout time.Duration
}

func NewCheckoutService(cart CartStore, repo repository.CheckoutRepository, saveTimeout time.Duration) *CheckoutService {
	return &CheckoutService{
		cart:        cart,
		repo:        repo,
		saveTimeout: saveTimeout,
	}
}

// Checkout validates the customer fields, snapshots the items (an override
// list wins over the live cart), persists a record and clears the live cart.
// Email format is not validated server-side; any non-empty string passes.
func (s *CheckoutService) Checkout(ctx context.Context, name, email string, override []domain.CartItem) (*domain.Receipt, error) {
	if name == "" || email == "" {
		return nil, ErrCustomerRequired
	}

	items := override
	if items == nil {
		items = s.cart.Items()
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := domain.CartTotal(items)
	timestamp := time.Now().UTC()

	record := &domain.CheckoutRecord{
		Name:      name,
		Email:     email,
		CartItems: items,
		Total:     total,
		Timestamp: timestamp,
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	if err := s.repo.Save(saveCtx, record); err != nil {
		slog.Warn("checkout record not persisted", "error", err)
	}

	// The live cart is cleared even when the charged items came from an
	// override list.
	s.cart.Clear()

	return &domain.Receipt{
		Name:      name,
		Email:     email,
		Items:     items,
		Total:     total,
		Timestamp: timestamp.Format(time.RFC3339),
	}, nil
}
