package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/Chanisha/E-com-cart/internal/service"
	"github.com/go-chi/chi/v5"
)

// Cart covers the cart operations the handlers map onto HTTP.
// Consumers define this interface, not the cart implementation.
type Cart interface {
	AddItem(ctx context.Context, productID, qty int) ([]domain.CartItem, error)
	UpdateQuantity(productID, qty int) ([]domain.CartItem, error)
	RemoveItem(productID int) ([]domain.CartItem, error)
	Items() []domain.CartItem
	Total() float64
}

type CartHandler struct {
	cart    Cart
	timeout time.Duration
}

func NewCartHandler(cart Cart, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    cart,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

type UpdateQuantityRequestDTO struct {
	Qty int `json:"qty"`
}

type CartResponseDTO struct {
	Message string            `json:"message"`
	Cart    []domain.CartItem `json:"cart"`
}

type CartContentsDTO struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// POST /api/cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid productId or qty")
		return
	}

	if req.ProductID == 0 || req.Qty < 1 {
		respondError(w, http.StatusBadRequest, "Invalid productId or qty")
		return
	}

	cart, err := h.cart.AddItem(ctx, req.ProductID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProductID), errors.Is(err, service.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "Invalid productId or qty")
		case errors.Is(err, service.ErrProductNotFound):
			respondError(w, http.StatusNotFound, "Product not found")
		default:
			respondError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Message: "Item added to cart",
		Cart:    cart,
	})
}

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	items := h.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}

	respondJSON(w, http.StatusOK, CartContentsDTO{
		Items: items,
		Total: h.cart.Total(),
	})
}

// PUT /api/cart/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	if req.Qty < 1 {
		respondError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Item not found in cart")
		return
	}

	cart, err := h.cart.UpdateQuantity(productID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "Invalid quantity")
		case errors.Is(err, service.ErrItemNotFound):
			respondError(w, http.StatusNotFound, "Item not found in cart")
		default:
			respondError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Message: "Cart updated",
		Cart:    cart,
	})
}

// DELETE /api/cart/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Item not found in cart")
		return
	}

	cart, err := h.cart.RemoveItem(productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			respondError(w, http.StatusNotFound, "Item not found in cart")
		default:
			respondError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Message: "Item removed from cart",
		Cart:    cart,
	})
}
