package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EnqueueInvoiceRequest captures an invoice while the backend is unreachable.
type EnqueueInvoiceRequest struct {
	Customer string          `json:"customer" validate:"required"`
	Date     *time.Time      `json:"date,omitempty"`
	Amount   decimal.Decimal `json:"amount" validate:"gte=0"`
	Items    json.RawMessage `json:"items,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// ListOfflineInvoicesParams filters the queue listing. Customer takes precedence over Status.
type ListOfflineInvoicesParams struct {
	Customer string `form:"customer"`
	Status   string `form:"status" validate:"omitempty,oneof=pending"`
}

// SyncResult summarises one pass over the offline queue.
type SyncResult struct {
	Sent    int      `json:"sent"`
	Failed  int      `json:"failed"`
	Skipped bool     `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ToSaleRequest converts a queued invoice into the payload posted to the sales endpoint.
func ToSaleRequest(inv domain.OfflineInvoice) SaleRequest {
	return SaleRequest{
		CustomerName: inv.Customer,
		Date:         inv.Date.Format("2006-01-02"),
		Amount:       inv.Amount,
		Status:       string(domain.SaleUnpaid),
		Items:        inv.Items,
		Notes:        inv.Notes,
		ClientRef:    inv.ClientRef.String(),
	}
}
