package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Chanisha/E-com-cart/internal/domain"
	"github.com/Chanisha/E-com-cart/internal/service"
)

// Checkout converts a cart into a receipt.
type Checkout interface {
	Checkout(ctx context.Context, name, email string, override []domain.CartItem) (*domain.Receipt, error)
}

type CheckoutHandler struct {
	checkout Checkout
	timeout  time.Duration
}

func NewCheckoutHandler(checkout Checkout, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		timeout:  timeout,
	}
}

type CheckoutRequestDTO struct {
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	CartItems []domain.CartItem `json:"cartItems"`
}

type CheckoutResponseDTO struct {
	Receipt *domain.Receipt `json:"receipt"`
	Message string          `json:"message"`
}

// POST /api/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	receipt, err := h.checkout.Checkout(ctx, req.Name, req.Email, req.CartItems)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerRequired):
			respondError(w, http.StatusBadRequest, "Name and email are required")
		case errors.Is(err, service.ErrEmptyCart):
			respondError(w, http.StatusBadRequest, "Cart is empty")
		default:
			respondError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{
		Receipt: receipt,
		Message: "Checkout successful",
	})
}
