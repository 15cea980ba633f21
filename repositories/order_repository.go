package repositories

import (
	"context"

	"shoe-store/models"
)

type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// CreateSale posts a checkout payload to /ventas. The response body is not
// meaningful to the cart; success is the 2xx status.
func (r *OrderRepository) CreateSale(ctx context.Context, sale models.SaleRequest) error {
	return r.client.postJSON(ctx, "/ventas", sale, nil)
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.client.getJSON(ctx, "/listaOrdenes", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
