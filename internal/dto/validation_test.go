package dto_test

import (
	"testing"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestValidate_LoginRequest(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.LoginRequest{Email: "a@b.co", Password: "x"}))

	fields := validationFields(t, dto.Validate(dto.LoginRequest{Email: "not-an-email"}))
	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Equal(t, "Password is required", fields["password"])
}

func TestValidate_SignupRequest(t *testing.T) {
	req := dto.SignupRequest{Name: "Asha", BusinessName: "Asha Stores", Email: "asha@example.com", Password: "longenough"}
	assert.NoError(t, dto.Validate(req))

	req.BusinessName = ""
	req.Password = "short"
	fields := validationFields(t, dto.Validate(req))
	assert.Equal(t, "Business name is required", fields["businessName"])
	assert.Equal(t, "Password must be at least 8 characters", fields["password"])
}

func TestValidate_ChangePasswordMismatch(t *testing.T) {
	err := dto.Validate(dto.ChangePasswordRequest{Current: "old-secret", New: "new-secret", ConfirmNew: "other-secret"})
	fields := validationFields(t, err)
	assert.Equal(t, "New passwords do not match.", fields["confirmNew"])
}

func TestValidate_ProductRequest(t *testing.T) {
	req := dto.ProductRequest{Name: "Rice", SKU: "R-1", Category: "Grocery", Stock: 5, Price: decimal.NewFromInt(40)}
	assert.NoError(t, dto.Validate(req))

	negative := -1
	req.Stock = -3
	req.Price = decimal.NewFromInt(-1)
	req.LowStockThreshold = &negative
	fields := validationFields(t, dto.Validate(req))
	assert.Equal(t, "Stock cannot be negative", fields["stock"])
	assert.Equal(t, "Price cannot be negative", fields["price"])
	assert.Equal(t, "Low stock threshold cannot be negative", fields["lowStockThreshold"])
}

func TestValidate_SaleRequest(t *testing.T) {
	req := dto.SaleRequest{CustomerName: "Ravi", Date: "2024-03-01", Amount: decimal.NewFromInt(100), Status: "Paid"}
	assert.NoError(t, dto.Validate(req))

	req.Status = "Refunded"
	req.Date = "01/03/2024"
	req.ClientRef = "abc"
	fields := validationFields(t, dto.Validate(req))
	assert.Equal(t, "Status must be one of: Paid, Unpaid, Overdue", fields["status"])
	assert.Equal(t, "Date must be a date in YYYY-MM-DD format", fields["date"])
	assert.Equal(t, "Client ref must be a valid UUID", fields["clientRef"])
}

func TestValidate_AccountRequest(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.AccountRequest{Name: "Cash", Type: "Asset"}))

	fields := validationFields(t, dto.Validate(dto.AccountRequest{Name: "Cash", Type: "ASSET"}))
	assert.Contains(t, fields["type"], "must be one of")
}

func TestProductRequest_ToProductDefaultsThreshold(t *testing.T) {
	p := dto.ProductRequest{Name: "Tea", SKU: "T-1", Category: "Beverages"}.ToProduct("7")
	assert.Equal(t, 10, p.LowStockThreshold)
	assert.Equal(t, "7", p.ID.String())
}
