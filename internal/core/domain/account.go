package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the known values.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalBalanceSide identifies which side of an entry increases an account
// for display purposes. The stored balance always uses the raw
// debit-minus-credit delta regardless of type.
type NormalBalanceSide string

const (
	DebitNormal  NormalBalanceSide = "DEBIT"
	CreditNormal NormalBalanceSide = "CREDIT"
)

// NormalBalance returns the side that increases accounts of this type.
// Assets and expenses are debit-normal; liabilities, equity and revenue are
// credit-normal.
func (t AccountType) NormalBalance() NormalBalanceSide {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// AccountSettings holds per-account posting behaviour flags.
type AccountSettings struct {
	AllowNegativeBalance bool `json:"allowNegativeBalance"`
}

// Account represents one ledger account in the chart of accounts.
// CurrentBalance is mutated exclusively by the transaction posting path.
type Account struct {
	AccountID       string          `json:"accountID"` // Primary key (UUID)
	Code            string          `json:"code"`      // Human-readable unique code, e.g. ASS0001
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Category        string          `json:"category"`        // Free-text sub-classification
	ParentAccountID string          `json:"parentAccountID"` // Self-referencing, empty when root
	Description     string          `json:"description"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"` // Running debit-minus-credit total
	IsActive        bool            `json:"isActive"`
	IsSystemAccount bool            `json:"isSystemAccount"` // Protected from deletion
	Settings        AccountSettings `json:"settings"`
	AuditFields
}

// DisplayBalance converts the stored debit-minus-credit balance to the
// conventional presentation sign for the account's type. Credit-normal
// accounts show the negated stored value, so a revenue account carrying a
// stored -100 displays as 100.
func (a *Account) DisplayBalance() decimal.Decimal {
	if a.AccountType.NormalBalance() == CreditNormal {
		return a.CurrentBalance.Neg()
	}
	return a.CurrentBalance
}
