package domain

import "github.com/shopspring/decimal"

// DashboardData is the summary returned by the dashboard endpoint.
type DashboardData struct {
	TotalSales          decimal.Decimal `json:"total_sales"`
	TotalPurchases      decimal.Decimal `json:"total_purchases"`
	TotalProducts       int             `json:"total_products"`
	OutstandingInvoices int             `json:"outstanding_invoices"`
	LowStockProducts    int             `json:"low_stock_products"`
	RecentInvoices      int             `json:"recent_invoices"`
	RecentBills         int             `json:"recent_bills"`
	TopProducts         []TopProduct    `json:"top_products"`
}

// TopProduct is a product entry of the dashboard summary.
type TopProduct struct {
	ID       RecordID        `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
