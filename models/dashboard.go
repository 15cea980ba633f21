package models

// Dashboard widget shapes, one per overview endpoint.

type StatCard struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

type SalesPoint struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

type RecentOrder struct {
	OrderID      int    `json:"order_id"`
	OrderDate    string `json:"order_date"`
	ItemsCount   int    `json:"items_count"`
	TotalAmount  string `json:"total_amount"`
	CustomerName string `json:"customer_name"`
}

type LowStockAlert struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductSKU   string `json:"product_sku"`
	CurrentStock int    `json:"current_stock"`
	MinimumStock int    `json:"minimum_stock"`
}

// ReportRequest is the body for POST /reports/{type}. CustomDateRange is only
// sent when DateRange is "custom".
type ReportRequest struct {
	DateRange       string     `json:"dateRange"`
	CustomDateRange *DateRange `json:"customDateRange,omitempty"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
