package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/utils"
	"github.com/SscSPs/digital_khata_client/internal/utils/accounting"
)

type accountingService struct {
	BaseService
	api portssvc.AccountingAPI
}

// NewAccountingService creates the chart of accounts service.
func NewAccountingService(api portssvc.AccountingAPI, notifier Notifier) portssvc.AccountingSvcFacade {
	return &accountingService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
	}
}

var _ portssvc.AccountingSvcFacade = (*accountingService)(nil)

func accountSearchFields(a domain.Account) []string {
	return []string{a.Name, string(a.Type)}
}

func (s *accountingService) ListAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	accounts, err := s.api.ListAccounts(ctx)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to list accounts: %w", err), "Failed to fetch chart of accounts")
	}
	return utils.FilterByQuery(accounts, query, accountSearchFields), nil
}

// ChartOfAccounts returns one group per account type in display order.
func (s *accountingService) ChartOfAccounts(ctx context.Context) ([]dto.AccountGroup, error) {
	accounts, err := s.ListAccounts(ctx, "")
	if err != nil {
		return nil, err
	}
	grouped, err := accounting.GroupByType(accounts)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to fetch chart of accounts")
	}

	groups := make([]dto.AccountGroup, 0, len(accounting.DisplayOrder))
	for _, t := range accounting.DisplayOrder {
		groups = append(groups, dto.AccountGroup{
			Type:     t,
			Title:    accounting.GroupTitle(t),
			Accounts: grouped[t],
			Total:    accounting.SumBalances(grouped[t]),
		})
	}
	return groups, nil
}

func (s *accountingService) GetAccount(ctx context.Context, id domain.RecordID) (*domain.Account, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Account id is required"), "Failed to fetch account")
	}
	account, err := s.api.GetAccount(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to get account %s: %w", id, err), "Failed to fetch account", slog.String("account_id", id.String()))
	}
	return account, nil
}

func (s *accountingService) CreateAccount(ctx context.Context, req dto.AccountRequest) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save account")
	}
	account, err := s.api.CreateAccount(ctx, req.ToAccount(""))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to create account: %w", err), "Failed to save account", slog.String("name", req.Name))
	}
	s.succeed("Account added successfully")
	return account, nil
}

func (s *accountingService) UpdateAccount(ctx context.Context, id domain.RecordID, req dto.AccountRequest) (*domain.Account, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Account id is required"), "Failed to save account")
	}
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save account")
	}
	account, err := s.api.UpdateAccount(ctx, req.ToAccount(id))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to update account %s: %w", id, err), "Failed to save account", slog.String("account_id", id.String()))
	}
	s.succeed("Account updated successfully")
	return account, nil
}

func (s *accountingService) DeleteAccount(ctx context.Context, id domain.RecordID) error {
	if err := s.api.DeleteAccount(ctx, id); err != nil {
		return s.fail(ctx, fmt.Errorf("failed to delete account %s: %w", id, err), "Failed to delete account", slog.String("account_id", id.String()))
	}
	s.succeed("Account deleted successfully")
	return nil
}
