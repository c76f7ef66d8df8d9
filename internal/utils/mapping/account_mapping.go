package mapping

import (
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	"github.com/mosaicsoft/bizbooks/internal/models"
)

// ToModelAccount converts a domain.Account to its storage model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:            d.AccountID,
		Code:                 d.Code,
		Name:                 d.Name,
		AccountType:          models.AccountType(d.AccountType),
		Category:             d.Category,
		ParentAccountID:      d.ParentAccountID,
		Description:          d.Description,
		OpeningBalance:       d.OpeningBalance,
		CurrentBalance:       d.CurrentBalance,
		IsActive:             d.IsActive,
		IsSystemAccount:      d.IsSystemAccount,
		AllowNegativeBalance: d.Settings.AllowNegativeBalance,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a storage model account to the domain shape.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Category:        m.Category,
		ParentAccountID: m.ParentAccountID,
		Description:     m.Description,
		OpeningBalance:  m.OpeningBalance,
		CurrentBalance:  m.CurrentBalance,
		IsActive:        m.IsActive,
		IsSystemAccount: m.IsSystemAccount,
		Settings: domain.AccountSettings{
			AllowNegativeBalance: m.AllowNegativeBalance,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
