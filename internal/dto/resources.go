package dto

import (
	"encoding/json"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name              string          `json:"name" validate:"required"`
	SKU               string          `json:"sku" validate:"required"`
	Category          string          `json:"category" validate:"required"`
	Stock             int             `json:"stock" validate:"gte=0"`
	Price             decimal.Decimal `json:"price" validate:"gte=0"`
	Supplier          string          `json:"supplier"`
	LowStockThreshold *int            `json:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
}

// ToProduct builds the record sent to the backend. A missing threshold takes the default.
func (r ProductRequest) ToProduct(id domain.RecordID) domain.Product {
	threshold := domain.DefaultLowStockThreshold
	if r.LowStockThreshold != nil {
		threshold = *r.LowStockThreshold
	}
	return domain.Product{
		ID:                id,
		Name:              r.Name,
		SKU:               r.SKU,
		Category:          r.Category,
		Stock:             r.Stock,
		Price:             r.Price,
		Supplier:          r.Supplier,
		LowStockThreshold: threshold,
	}
}

// SaleRequest is the payload for creating or updating a sales invoice.
// ClientRef is set by the offline queue so the backend can drop replays.
type SaleRequest struct {
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	CustomerName  string          `json:"customerName" validate:"required"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	Status        string          `json:"status" validate:"required,oneof=Paid Unpaid Overdue"`
	Items         json.RawMessage `json:"items,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	ClientRef     string          `json:"clientRef,omitempty" validate:"omitempty,uuid"`
}

// ToSale builds the record sent on update.
func (r SaleRequest) ToSale(id domain.RecordID) domain.Sale {
	return domain.Sale{
		ID:            id,
		InvoiceNumber: r.InvoiceNumber,
		CustomerName:  r.CustomerName,
		Date:          r.Date,
		Amount:        r.Amount,
		Status:        domain.SaleStatus(r.Status),
	}
}

// PurchaseRequest is the payload for creating or updating a purchase bill.
type PurchaseRequest struct {
	BillNumber   string          `json:"billNumber,omitempty"`
	SupplierName string          `json:"supplierName" validate:"required"`
	Date         string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount       decimal.Decimal `json:"amount" validate:"gte=0"`
	Status       string          `json:"status" validate:"required,oneof=Paid Unpaid"`
}

// ToPurchase builds the record sent to the backend.
func (r PurchaseRequest) ToPurchase(id domain.RecordID) domain.Purchase {
	return domain.Purchase{
		ID:           id,
		BillNumber:   r.BillNumber,
		SupplierName: r.SupplierName,
		Date:         r.Date,
		Amount:       r.Amount,
		Status:       domain.PurchaseStatus(r.Status),
	}
}

// AccountRequest is the payload for creating or updating a chart of accounts entry.
type AccountRequest struct {
	Name    string          `json:"name" validate:"required"`
	Type    string          `json:"type" validate:"required,oneof=Asset Liability Equity Revenue Expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ToAccount builds the record sent to the backend.
func (r AccountRequest) ToAccount(id domain.RecordID) domain.Account {
	return domain.Account{
		ID:      id,
		Name:    r.Name,
		Type:    domain.AccountType(r.Type),
		Balance: r.Balance,
	}
}

// SearchParams is the optional free-text filter on list endpoints.
type SearchParams struct {
	Query string `form:"q"`
}

// AccountGroup is one section of the chart of accounts.
type AccountGroup struct {
	Type     domain.AccountType `json:"type"`
	Title    string             `json:"title"`
	Accounts []domain.Account   `json:"accounts"`
	Total    decimal.Decimal    `json:"total"`
}
