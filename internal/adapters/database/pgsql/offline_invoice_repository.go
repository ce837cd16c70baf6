package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of *pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBTX = (*pgxpool.Pool)(nil)

type PgxOfflineInvoiceRepository struct {
	db DBTX
}

// NewPgxOfflineInvoiceRepository creates the offline invoice queue over db.
func NewPgxOfflineInvoiceRepository(db DBTX) repositories.OfflineInvoiceRepositoryFacade {
	return &PgxOfflineInvoiceRepository{db: db}
}

const offlineInvoiceColumns = `id, client_ref, customer, date, status, amount, items, notes`

// SaveOfflineInvoice appends an invoice to the queue and returns the assigned id.
func (r *PgxOfflineInvoiceRepository) SaveOfflineInvoice(ctx context.Context, invoice domain.OfflineInvoice) (int64, error) {
	query := `
		INSERT INTO offline_invoices (client_ref, customer, date, status, amount, items, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var items any
	if len(invoice.Items) > 0 {
		items = []byte(invoice.Items)
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		invoice.ClientRef,
		invoice.Customer,
		invoice.Date,
		string(invoice.Status),
		invoice.Amount,
		items,
		invoice.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save offline invoice for %s: %w", invoice.Customer, err)
	}
	return id, nil
}

// ListOfflineInvoices returns the whole queue in insertion order.
func (r *PgxOfflineInvoiceRepository) ListOfflineInvoices(ctx context.Context) ([]domain.OfflineInvoice, error) {
	query := `SELECT ` + offlineInvoiceColumns + ` FROM offline_invoices ORDER BY id;`
	return r.queryInvoices(ctx, query)
}

// FindOfflineInvoicesByStatus uses the status index.
func (r *PgxOfflineInvoiceRepository) FindOfflineInvoicesByStatus(ctx context.Context, status domain.OfflineInvoiceStatus) ([]domain.OfflineInvoice, error) {
	query := `SELECT ` + offlineInvoiceColumns + ` FROM offline_invoices WHERE status = $1 ORDER BY id;`
	return r.queryInvoices(ctx, query, string(status))
}

// FindOfflineInvoicesByCustomer uses the customer index.
func (r *PgxOfflineInvoiceRepository) FindOfflineInvoicesByCustomer(ctx context.Context, customer string) ([]domain.OfflineInvoice, error) {
	query := `SELECT ` + offlineInvoiceColumns + ` FROM offline_invoices WHERE customer = $1 ORDER BY id;`
	return r.queryInvoices(ctx, query, customer)
}

// DeleteOfflineInvoice removes one queued invoice.
func (r *PgxOfflineInvoiceRepository) DeleteOfflineInvoice(ctx context.Context, id int64) error {
	query := `DELETE FROM offline_invoices WHERE id = $1;`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete offline invoice %d: %w", id, err)
	}
	return nil
}

func (r *PgxOfflineInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.OfflineInvoice, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query offline invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.OfflineInvoice{}
	for rows.Next() {
		var inv domain.OfflineInvoice
		var status string
		var items []byte
		if err := rows.Scan(
			&inv.ID,
			&inv.ClientRef,
			&inv.Customer,
			&inv.Date,
			&status,
			&inv.Amount,
			&items,
			&inv.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan offline invoice row: %w", err)
		}
		inv.Status = domain.OfflineInvoiceStatus(status)
		if len(items) > 0 {
			inv.Items = json.RawMessage(items)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offline invoice rows: %w", err)
	}
	return invoices, nil
}
