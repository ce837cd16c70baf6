package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfflineInvoiceStatus tracks a queued invoice.
type OfflineInvoiceStatus string

const (
	OfflineInvoicePending OfflineInvoiceStatus = "pending"
)

// OfflineInvoice is an invoice captured while the backend was unreachable.
// ID is assigned by the queue on insert. ClientRef travels with the invoice
// when it is sent so the backend can drop duplicates.
type OfflineInvoice struct {
	ID        int64                `json:"id"`
	ClientRef uuid.UUID            `json:"clientRef"`
	Customer  string               `json:"customer"`
	Date      time.Time            `json:"date"`
	Status    OfflineInvoiceStatus `json:"status"`
	Amount    decimal.Decimal      `json:"amount"`
	Items     json.RawMessage      `json:"items,omitempty"`
	Notes     string               `json:"notes,omitempty"`
}
