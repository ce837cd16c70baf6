package domain

import "github.com/shopspring/decimal"

// PurchaseStatus is the payment status of a purchase bill.
type PurchaseStatus string

const (
	PurchasePaid   PurchaseStatus = "Paid"
	PurchaseUnpaid PurchaseStatus = "Unpaid"
)

// Purchase is a purchase bill as returned by the backend.
type Purchase struct {
	ID           RecordID        `json:"id"`
	BillNumber   string          `json:"billNumber"`
	SupplierName string          `json:"supplierName"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       PurchaseStatus  `json:"status"`
}
