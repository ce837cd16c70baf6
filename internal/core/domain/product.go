package domain

import "github.com/shopspring/decimal"

// DefaultLowStockThreshold is used when a product is created without a threshold.
const DefaultLowStockThreshold = 10

// Product is an inventory item.
type Product struct {
	ID                RecordID        `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Stock             int             `json:"stock"`
	Price             decimal.Decimal `json:"price"`
	Supplier          string          `json:"supplier"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// IsLowStock reports whether the stock level is at or below the product's threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// StockValue is price multiplied by units on hand.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
