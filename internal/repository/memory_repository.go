package repository

import (
	"context"
	"sync"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/google/uuid"
)

// MemoryProductRepository implements ProductRepository with in-memory storage.
// It is selected at startup when no database is configured or reachable.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (m *MemoryProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Product, len(m.products))
	copy(result, m.products)
	return result, nil
}

func (m *MemoryProductRepository) FindByID(_ context.Context, id int) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *MemoryProductRepository) InsertMany(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, products...)
	return nil
}

func (m *MemoryProductRepository) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.products)), nil
}

// MemoryCheckoutRepository keeps checkout records in process memory.
// Records are lost on restart, which is acceptable for the mock checkout flow.
type MemoryCheckoutRepository struct {
	mu      sync.Mutex
	records []domain.CheckoutRecord
}

func NewMemoryCheckoutRepository() *MemoryCheckoutRepository {
	return &MemoryCheckoutRepository{}
}

func (m *MemoryCheckoutRepository) Save(_ context.Context, record *domain.CheckoutRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	m.records = append(m.records, *record)
	return nil
}

// Records returns a copy of everything saved so far.
func (m *MemoryCheckoutRepository) Records() []domain.CheckoutRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]domain.CheckoutRecord, len(m.records))
	copy(result, m.records)
	return result
}
