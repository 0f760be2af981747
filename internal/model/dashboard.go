package model

// TopSellingProduct pairs a product with its cumulative quantity sold.
type TopSellingProduct struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// DashboardMetrics is derived, never persisted. It is recomputed from
// scratch on every read.
type DashboardMetrics struct {
	DailySales          int64               `json:"daily_sales"`
	WeeklySales         int64               `json:"weekly_sales"`
	MonthlySales        int64               `json:"monthly_sales"`
	TotalInventoryValue int64               `json:"total_inventory_value"`
	LowStockItems       []Product           `json:"low_stock_items"`
	TopSellingProducts  []TopSellingProduct `json:"top_selling_products"`
}
