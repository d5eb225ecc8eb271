package service

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/Chanisha/E-com-cart/internal/repository"
	"github.com/shopspring/decimal"
)

// seedImages are the catalog source files. Each one becomes a product with
// a deterministic id, name and price, so every start produces the same catalog.
var seedImages = []string{
	"bag.jpeg",
	"dragon_bracelet.jpg",
	"jacket.png",
	"micropave.jpg",
	"rose_gold_earrings.jpeg",
	"solitare_ring.jpeg",
	"sweater.png",
	"tshirt.jpeg",
}

const seedBasePrice = 29.99

// CatalogService serves read-only product lookups. The in-process product
// list is authoritative for reads whenever it is non-empty; the repository
// is only consulted for seeding and as a fallback.
type CatalogService struct {
	repo     repository.ProductRepository
	products []domain.Product
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		repo:     repo,
		products: seedProducts(),
	}
}

// Initialize writes the seed catalog to the repository if it is empty.
// Failures are logged and ignored; reads are served from memory regardless.
func (s *CatalogService) Initialize(ctx context.Context) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		slog.Warn("catalog seed skipped, repository unavailable", "error", err)
		return
	}
	if count > 0 {
		return
	}

	if err := s.repo.InsertMany(ctx, s.products); err != nil {
		slog.Warn("catalog seed failed", "error", err)
		return
	}
	slog.Info("catalog seeded", "products", len(s.products))
}

// ListProducts returns the full catalog in insertion order.
func (s *CatalogService) ListProducts(ctx context.Context) []domain.Product {
	if len(s.products) > 0 {
		result := make([]domain.Product, len(s.products))
		copy(result, s.products)
		return result
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		slog.Warn("repository product listing failed", "error", err)
		return []domain.Product{}
	}
	return products
}

// FindProduct looks a product up by id.
func (s *CatalogService) FindProduct(ctx context.Context, id int) (*domain.Product, error) {
	if len(s.products) > 0 {
		for _, p := range s.products {
			if p.ID == id {
				product := p
				return &product, nil
			}
		}
		return nil, ErrProductNotFound
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			slog.Warn("repository product lookup failed", "error", err)
		}
		return nil, ErrProductNotFound
	}
	return product, nil
}

func seedProducts() []domain.Product {
	products := make([]domain.Product, len(seedImages))
	for i, file := range seedImages {
		name := formatProductName(file)
		price := decimal.NewFromFloat(seedBasePrice).
			Add(decimal.NewFromInt(int64(i * 20))).
			Round(2).InexactFloat64()

		products[i] = domain.Product{
			ID:          i + 1,
			Name:        name,
			Price:       price,
			Description: "Premium " + strings.ToLower(name),
			Image:       "/" + file,
		}
	}
	return products
}

// formatProductName turns an image filename into a display name:
// "rose_gold_earrings.jpeg" -> "Rose Gold Earrings".
func formatProductName(filename string) string {
	name := strings.TrimSuffix(filename, path.Ext(filename))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
