package mapping

import (
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	"github.com/mosaicsoft/bizbooks/internal/models"
)

// ToModelTransaction converts a domain transaction header to its storage model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:     d.TransactionID,
		TransactionNumber: d.TransactionNumber,
		TransactionDate:   d.TransactionDate,
		TransactionType:   models.TransactionType(d.TransactionType),
		Description:       d.Description,
		ReferenceID:       d.ReferenceID,
		Status:            models.TransactionStatus(d.Status),
		IsReconciled:      d.IsReconciled,
		ApprovedBy:        d.ApprovedBy,
		ApprovedAt:        d.ApprovedAt,
		PostedAt:          d.PostedAt,
		ReconciledBy:      d.ReconciledBy,
		ReconciledAt:      d.ReconciledAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.ReferenceType != nil {
		refType := string(*d.ReferenceType)
		m.ReferenceType = &refType
	}
	return m
}

// ToDomainTransaction converts a storage model transaction header to the
// domain shape. Entries are attached separately by the caller.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:     m.TransactionID,
		TransactionNumber: m.TransactionNumber,
		TransactionDate:   m.TransactionDate,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Description:       m.Description,
		ReferenceID:       m.ReferenceID,
		Status:            domain.TransactionStatus(m.Status),
		IsReconciled:      m.IsReconciled,
		ApprovedBy:        m.ApprovedBy,
		ApprovedAt:        m.ApprovedAt,
		PostedAt:          m.PostedAt,
		ReconciledBy:      m.ReconciledBy,
		ReconciledAt:      m.ReconciledAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.ReferenceType != nil {
		refType := domain.ReferenceType(*m.ReferenceType)
		d.ReferenceType = &refType
	}
	return d
}

// ToModelEntry converts a domain entry to its storage model.
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:        d.EntryID,
		TransactionID:  d.TransactionID,
		AccountID:      d.AccountID,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Description:    d.Description,
		LineNo:         d.LineNo,
		RunningBalance: d.RunningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a storage model entry to the domain shape.
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:        m.EntryID,
		TransactionID:  m.TransactionID,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Description:    m.Description,
		LineNo:         m.LineNo,
		RunningBalance: m.RunningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model entries.
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
