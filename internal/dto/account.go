package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code                 string             `json:"code"` // Optional; auto-generated when empty
	Name                 string             `json:"name" binding:"required"`
	AccountType          domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Category             string             `json:"category" binding:"required"`
	ParentAccountID      *string            `json:"parentAccountID"` // Optional
	Description          string             `json:"description"`
	OpeningBalance       *decimal.Decimal   `json:"openingBalance"` // Defaults to zero
	IsSystemAccount      bool               `json:"isSystemAccount"`
	AllowNegativeBalance bool               `json:"allowNegativeBalance"`
}

// UpdateAccountRequest defines the mutable account fields. Pointers
// distinguish "not provided" from zero values.
type UpdateAccountRequest struct {
	Name            *string `json:"name"`
	Category        *string `json:"category"`
	Description     *string `json:"description"`
	ParentAccountID *string `json:"parentAccountID"`
	IsActive        *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID            string             `json:"accountID"`
	Code                 string             `json:"code"`
	Name                 string             `json:"name"`
	AccountType          domain.AccountType `json:"accountType"`
	Category             string             `json:"category"`
	ParentAccountID      string             `json:"parentAccountID,omitempty"`
	Description          string             `json:"description,omitempty"`
	OpeningBalance       decimal.Decimal    `json:"openingBalance"`
	CurrentBalance       decimal.Decimal    `json:"currentBalance"`
	DisplayBalance       decimal.Decimal    `json:"displayBalance"`
	IsActive             bool               `json:"isActive"`
	IsSystemAccount      bool               `json:"isSystemAccount"`
	AllowNegativeBalance bool               `json:"allowNegativeBalance"`
	CreatedAt            time.Time          `json:"createdAt"`
	CreatedBy            string             `json:"createdBy"`
	LastUpdatedAt        time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy        string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:            acc.AccountID,
		Code:                 acc.Code,
		Name:                 acc.Name,
		AccountType:          acc.AccountType,
		Category:             acc.Category,
		ParentAccountID:      acc.ParentAccountID,
		Description:          acc.Description,
		OpeningBalance:       acc.OpeningBalance,
		CurrentBalance:       acc.CurrentBalance,
		DisplayBalance:       acc.DisplayBalance(),
		IsActive:             acc.IsActive,
		IsSystemAccount:      acc.IsSystemAccount,
		AllowNegativeBalance: acc.Settings.AllowNegativeBalance,
		CreatedAt:            acc.CreatedAt,
		CreatedBy:            acc.CreatedBy,
		LastUpdatedAt:        acc.LastUpdatedAt,
		LastUpdatedBy:        acc.LastUpdatedBy,
	}
}

// ChartAccount is one row of the chart of accounts, with the parent
// resolved for display.
type ChartAccount struct {
	AccountID      string             `json:"accountID"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	Category       string             `json:"category"`
	ParentCode     string             `json:"parentCode,omitempty"`
	ParentName     string             `json:"parentName,omitempty"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	DisplayBalance decimal.Decimal    `json:"displayBalance"`
}

// ChartOfAccountsResponse wraps the full chart listing.
type ChartOfAccountsResponse struct {
	Accounts []ChartAccount `json:"accounts"`
}

// AccountBalanceResponse is the payload of a point-in-time balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      time.Time       `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
