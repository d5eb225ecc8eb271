package repository

import (
	"context"
	"errors"

	"github.com/Chanisha/E-com-cart/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the persistence operations the catalog needs.
// Consumers define this interface, not the MongoDB implementation.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	InsertMany(ctx context.Context, products []domain.Product) error
	Count(ctx context.Context) (int64, error)
}

// CheckoutRepository stores finished checkout records.
type CheckoutRepository interface {
	Save(ctx context.Context, record *domain.CheckoutRecord) error
}
