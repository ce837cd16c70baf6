package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

const (
	productsPath  = "/inventory/api/products/"
	invoicesPath  = "/sales/api/invoices/"
	billsPath     = "/purchases/api/bills/"
	accountsPath  = "/accounting/api/accounts/"
	dashboardPath = "/dashboard/api/data/"
)

// itemPath builds "{collection}{id}/" with the id path-escaped.
func itemPath(collection string, id domain.RecordID) string {
	return collection + url.PathEscape(id.String()) + "/"
}

func requireID(id domain.RecordID) error {
	if id.IsZero() {
		return apperrors.NewValidationError("id", "id is required")
	}
	return nil
}

// --- Inventory ---

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return request[[]domain.Product](ctx, c, productsPath, nil)
}

func (c *Client) GetProduct(ctx context.Context, id domain.RecordID) (*domain.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	p, err := request[domain.Product](ctx, c, itemPath(productsPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	// The outer ID shadows the embedded one so new records are sent without an id.
	payload := struct {
		domain.Product
		ID *string `json:"id,omitempty"`
	}{Product: product}
	p, err := request[domain.Product](ctx, c, productsPath, &RequestOptions{Method: http.MethodPost, Body: payload})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if err := requireID(product.ID); err != nil {
		return nil, err
	}
	p, err := request[domain.Product](ctx, c, itemPath(productsPath, product.ID), &RequestOptions{Method: http.MethodPut, Body: product})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id domain.RecordID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.Do(ctx, itemPath(productsPath, id), &RequestOptions{Method: http.MethodDelete}, nil)
}

// --- Sales ---

func (c *Client) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return request[[]domain.Sale](ctx, c, invoicesPath, nil)
}

func (c *Client) GetSale(ctx context.Context, id domain.RecordID) (*domain.Sale, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	s, err := request[domain.Sale](ctx, c, itemPath(invoicesPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateSale(ctx context.Context, req dto.SaleRequest) (*domain.Sale, error) {
	s, err := request[domain.Sale](ctx, c, invoicesPath, &RequestOptions{Method: http.MethodPost, Body: req})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	if err := requireID(sale.ID); err != nil {
		return nil, err
	}
	s, err := request[domain.Sale](ctx, c, itemPath(invoicesPath, sale.ID), &RequestOptions{Method: http.MethodPut, Body: sale})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSale(ctx context.Context, id domain.RecordID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.Do(ctx, itemPath(invoicesPath, id), &RequestOptions{Method: http.MethodDelete}, nil)
}

// --- Purchases ---

func (c *Client) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	return request[[]domain.Purchase](ctx, c, billsPath, nil)
}

func (c *Client) GetPurchase(ctx context.Context, id domain.RecordID) (*domain.Purchase, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	p, err := request[domain.Purchase](ctx, c, itemPath(billsPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	payload := struct {
		domain.Purchase
		ID *string `json:"id,omitempty"`
	}{Purchase: purchase}
	p, err := request[domain.Purchase](ctx, c, billsPath, &RequestOptions{Method: http.MethodPost, Body: payload})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	if err := requireID(purchase.ID); err != nil {
		return nil, err
	}
	p, err := request[domain.Purchase](ctx, c, itemPath(billsPath, purchase.ID), &RequestOptions{Method: http.MethodPut, Body: purchase})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePurchase(ctx context.Context, id domain.RecordID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.Do(ctx, itemPath(billsPath, id), &RequestOptions{Method: http.MethodDelete}, nil)
}

// --- Accounting ---

func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return request[[]domain.Account](ctx, c, accountsPath, nil)
}

func (c *Client) GetAccount(ctx context.Context, id domain.RecordID) (*domain.Account, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	a, err := request[domain.Account](ctx, c, itemPath(accountsPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	payload := struct {
		domain.Account
		ID *string `json:"id,omitempty"`
	}{Account: account}
	a, err := request[domain.Account](ctx, c, accountsPath, &RequestOptions{Method: http.MethodPost, Body: payload})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := requireID(account.ID); err != nil {
		return nil, err
	}
	a, err := request[domain.Account](ctx, c, itemPath(accountsPath, account.ID), &RequestOptions{Method: http.MethodPut, Body: account})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id domain.RecordID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.Do(ctx, itemPath(accountsPath, id), &RequestOptions{Method: http.MethodDelete}, nil)
}

// --- Reports & dashboard ---

// GetReport fetches /reports/api/{kind}/ with params passed through as the query string.
func (c *Client) GetReport(ctx context.Context, kind domain.ReportKind, params url.Values) (domain.Report, error) {
	if _, err := domain.ParseReportKind(string(kind)); err != nil {
		return nil, apperrors.NewValidationError("kind", err.Error())
	}
	endpoint := fmt.Sprintf("/reports/api/%s/", kind)
	return request[domain.Report](ctx, c, endpoint, &RequestOptions{Query: params})
}

func (c *Client) GetDashboardData(ctx context.Context) (*domain.DashboardData, error) {
	d, err := request[domain.DashboardData](ctx, c, dashboardPath, nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
