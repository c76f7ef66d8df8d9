package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/apperrors"
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
)

// BalanceTolerance is the epsilon within which debit and credit totals are
// considered equal, tolerating rounding in amounts originating upstream.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// ValidateEntries performs the structural checks on a candidate entry set:
// at least two lines touching at least two distinct accounts, and no
// negative amounts. A line carrying both a debit and a credit is accepted;
// one side per line is convention, not a rule. It does not touch storage.
func ValidateEntries(entries []domain.Entry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: transaction must have at least two entries", apperrors.ErrValidation)
	}

	accountSet := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.AccountID == "" {
			return fmt.Errorf("%w: entry %d has no account", apperrors.ErrValidation, i)
		}
		if e.Debit.IsNegative() {
			return fmt.Errorf("%w: entry %d has a negative debit %s", apperrors.ErrValidation, i, e.Debit.String())
		}
		if e.Credit.IsNegative() {
			return fmt.Errorf("%w: entry %d has a negative credit %s", apperrors.ErrValidation, i, e.Credit.String())
		}
		if e.Debit.IsZero() && e.Credit.IsZero() {
			return fmt.Errorf("%w: entry %d has neither a debit nor a credit amount", apperrors.ErrValidation, i)
		}
		accountSet[e.AccountID] = struct{}{}
	}
	if len(accountSet) < 2 {
		return fmt.Errorf("%w: transaction must affect at least two different accounts", apperrors.ErrValidation)
	}
	return nil
}

// CheckBalanced verifies that total debits equal total credits within
// BalanceTolerance. On failure it returns an *apperrors.UnbalancedError
// carrying both totals.
func CheckBalanced(entries []domain.Entry) error {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	if totalDebit.Sub(totalCredit).Abs().Cmp(BalanceTolerance) >= 0 {
		return &apperrors.UnbalancedError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}
	return nil
}

// BalanceDeltas aggregates the net debit-minus-credit effect of an entry set
// per account. This is the amount the posting path adds to each account's
// running balance.
func BalanceDeltas(entries []domain.Entry) map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal)
	for _, e := range entries {
		deltas[e.AccountID] = deltas[e.AccountID].Add(e.Delta())
	}
	return deltas
}
