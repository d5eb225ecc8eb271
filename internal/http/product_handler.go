package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Chanisha/E-com-cart/internal/domain"
)

// Catalog is the read-only product view the handler needs.
type Catalog interface {
	ListProducts(ctx context.Context) []domain.Product
}

type ProductHandler struct {
	catalog Catalog
	timeout time.Duration
}

func NewProductHandler(catalog Catalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products := h.catalog.ListProducts(ctx)
	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, http.StatusOK, products)
}
