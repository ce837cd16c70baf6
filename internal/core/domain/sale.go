package domain

import "github.com/shopspring/decimal"

// SaleStatus is the payment status of a sales invoice.
type SaleStatus string

const (
	SalePaid    SaleStatus = "Paid"
	SaleUnpaid  SaleStatus = "Unpaid"
	SaleOverdue SaleStatus = "Overdue"
)

// Sale is a sales invoice as returned by the backend.
type Sale struct {
	ID            RecordID        `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Status        SaleStatus      `json:"status"`
}
