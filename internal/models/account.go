package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the persisted representation of a ledger account.
// ParentAccountID uses an empty string for the NULL root case.
type Account struct {
	AccountID            string          `db:"account_id"`
	Code                 string          `db:"code"`
	Name                 string          `db:"name"`
	AccountType          AccountType     `db:"account_type"`
	Category             string          `db:"category"`
	ParentAccountID      string          `db:"parent_account_id"` // Nullable
	Description          string          `db:"description"`
	OpeningBalance       decimal.Decimal `db:"opening_balance"`
	CurrentBalance       decimal.Decimal `db:"current_balance"`
	IsActive             bool            `db:"is_active"`
	IsSystemAccount      bool            `db:"is_system_account"`
	AllowNegativeBalance bool            `db:"allow_negative_balance"`
	AuditFields
}
