package repositories

import (
	"context"

	"shoe-store/models"
)

// ReportRepository drives the binary report exports. Responses are opaque
// blobs handed straight back to the browser as downloads.
type ReportRepository struct {
	client *Client
}

func NewReportRepository(client *Client) *ReportRepository {
	return &ReportRepository{client: client}
}

func (r *ReportRepository) Export(ctx context.Context, reportType string, req models.ReportRequest) ([]byte, string, error) {
	return r.client.postBlob(ctx, "/reports/"+reportType, req)
}

// ExportCustomers sends the current customer rows back for rendering, the
// way the original export button did.
func (r *ReportRepository) ExportCustomers(ctx context.Context, customers []models.Customer) ([]byte, string, error) {
	body := map[string]interface{}{"data": customers}
	return r.client.postBlob(ctx, "/reports/customers", body)
}
