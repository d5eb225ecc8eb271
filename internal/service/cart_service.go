package service

import (
	"context"
	"sync"

	"github.com/Chanisha/E-com-cart/internal/domain"
)

// ProductFinder resolves a product id to its catalog entry.
// Consumers define this interface, not the catalog implementation.
type ProductFinder interface {
	FindProduct(ctx context.Context, id int) (*domain.Product, error)
}

// CartService owns the single process-wide cart. The cart is not scoped
// per user or session; all mutations go through one mutex so concurrent
// requests serialize.
type CartService struct {
	mu      sync.Mutex
	items   []domain.CartItem
	catalog ProductFinder
}

func NewCartService(catalog ProductFinder) *CartService {
	return &CartService{catalog: catalog}
}

// AddItem appends a new line copying the product's current name and price,
// or increments qty if a line for the product already exists.
// Returns the full updated cart.
func (s *CartService) AddItem(ctx context.Context, productID, qty int) ([]domain.CartItem, error) {
	if productID == 0 {
		return nil, ErrInvalidProductID
	}
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Qty += qty
			return s.itemsLocked(), nil
		}
	}

	s.items = append(s.items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
	})
	return s.itemsLocked(), nil
}

// UpdateQuantity sets the line's qty to the exact given value.
func (s *CartService) UpdateQuantity(productID, qty int) ([]domain.CartItem, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Qty = qty
			return s.itemsLocked(), nil
		}
	}
	return nil, ErrItemNotFound
}

// RemoveItem deletes the line, preserving the order of the remaining lines.
func (s *CartService) RemoveItem(productID int) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.itemsLocked(), nil
		}
	}
	return nil, ErrItemNotFound
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

// Total computes the cart total fresh on every call.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.items)
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *CartService) itemsLocked() []domain.CartItem {
	result := make([]domain.CartItem, len(s.items))
	copy(result, s.items)
	return result
}
