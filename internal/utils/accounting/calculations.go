package accounting

import (
	"fmt"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayOrder is the order in which the chart of accounts lists the account types.
var DisplayOrder = []domain.AccountType{
	domain.Asset,
	domain.Liability,
	domain.Equity,
	domain.Revenue,
	domain.Expense,
}

// GroupTitle returns the heading used for a group of accounts of the given type.
func GroupTitle(t domain.AccountType) string {
	switch t {
	case domain.Asset:
		return "Assets"
	case domain.Liability:
		return "Liabilities"
	case domain.Equity:
		return "Equity"
	case domain.Revenue:
		return "Revenue"
	case domain.Expense:
		return "Expenses"
	}
	return string(t)
}

// GroupByType splits accounts by type, keeping their relative order.
// Every known type is present in the result, possibly with an empty slice.
func GroupByType(accounts []domain.Account) (map[domain.AccountType][]domain.Account, error) {
	groups := make(map[domain.AccountType][]domain.Account, len(DisplayOrder))
	for _, t := range DisplayOrder {
		groups[t] = []domain.Account{}
	}
	for _, acc := range accounts {
		if !acc.Type.Valid() {
			return nil, fmt.Errorf("unknown account type '%s' encountered for account ID %s", acc.Type, acc.ID)
		}
		groups[acc.Type] = append(groups[acc.Type], acc)
	}
	return groups, nil
}

// SumBalances adds up the balances of accounts.
func SumBalances(accounts []domain.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, acc := range accounts {
		sum = sum.Add(acc.Balance)
	}
	return sum
}

// DisplayBalance splits a balance into the magnitude shown to the user and
// whether it is shown as a positive amount.
func DisplayBalance(balance decimal.Decimal) (decimal.Decimal, bool) {
	return balance.Abs(), !balance.IsNegative()
}
