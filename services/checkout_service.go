package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/store"
)

var (
	// ErrNotAuthenticated means no usable identity was resolvable before
	// checkout; no network call is made in that case.
	ErrNotAuthenticated = errors.New("customer not authenticated")

	// ErrEmptyCart mirrors the disabled checkout button: an empty cart is
	// never submitted.
	ErrEmptyCart = errors.New("cart is empty")
)

// SaleCreator is the slice of the order repository checkout needs.
type SaleCreator interface {
	CreateSale(ctx context.Context, sale models.SaleRequest) error
}

// CheckoutService converts a cart into an order request and reconciles the
// result: the cart is cleared only after the upstream accepts the sale, and
// left untouched on any failure so the user can retry.
type CheckoutService struct {
	orders SaleCreator
	logger *zap.Logger
}

func NewCheckoutService(orders SaleCreator, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{orders: orders, logger: logger}
}

func (s *CheckoutService) Checkout(ctx context.Context, identity *models.Identity, cart *store.Cart) (store.State, error) {
	state := cart.State()

	if identity == nil || identity.ID == 0 {
		return state, ErrNotAuthenticated
	}
	if len(state.Items) == 0 {
		return state, ErrEmptyCart
	}

	sale := models.SaleRequest{
		IDCliente: identity.ID,
		Productos: make([]models.SaleItem, 0, len(state.Items)),
	}
	for _, item := range state.Items {
		sale.Productos = append(sale.Productos, models.SaleItem{
			IDProducto: item.ID,
			Cantidad:   item.Quantity,
		})
	}

	if err := s.orders.CreateSale(ctx, sale); err != nil {
		return state, err
	}

	s.logger.Info("sale registered",
		zap.Int("customer_id", identity.ID),
		zap.Int("items", len(sale.Productos)))

	return cart.Dispatch(store.Intent{Type: store.ClearCart}), nil
}
