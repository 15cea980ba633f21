package repositories

import (
	"context"

	"shoe-store/models"
)

// DashboardRepository fetches the overview widgets, one endpoint each.
type DashboardRepository struct {
	client *Client
}

func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

func (r *DashboardRepository) Stats(ctx context.Context) ([]models.StatCard, error) {
	var stats []models.StatCard
	if err := r.client.getJSON(ctx, "/estadisticas", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *DashboardRepository) SalesSummary(ctx context.Context) ([]models.SalesPoint, error) {
	var points []models.SalesPoint
	if err := r.client.getJSON(ctx, "/sales-summary", &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *DashboardRepository) RecentOrders(ctx context.Context) ([]models.RecentOrder, error) {
	var orders []models.RecentOrder
	if err := r.client.getJSON(ctx, "/recent-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *DashboardRepository) LowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error) {
	var alerts []models.LowStockAlert
	if err := r.client.getJSON(ctx, "/low-stock-alert", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
