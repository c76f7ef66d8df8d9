package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	"github.com/mosaicsoft/bizbooks/internal/middleware"
)

// NumberingService issues sequential, human-legible identifiers backed by a
// database sequence table. Gaps can appear when a surrounding operation
// fails after reserving a value; numbers are unique and increasing, not
// gapless.
type NumberingService struct {
	sequenceRepo portsrepo.SequenceRepository
}

func NewNumberingService(repo portsrepo.SequenceRepository) *NumberingService {
	return &NumberingService{sequenceRepo: repo}
}

// typePrefix derives the three-letter prefix from a type name, e.g.
// ASSET -> ASS, SALE -> SAL.
func typePrefix(name string) string {
	upper := strings.ToUpper(name)
	if len(upper) <= 3 {
		return upper
	}
	return upper[:3]
}

// NextAccountCode returns the next code for the given account type, e.g.
// ASS0001.
func (s *NumberingService) NextAccountCode(ctx context.Context, accountType domain.AccountType) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	prefix := typePrefix(string(accountType))

	next, err := s.sequenceRepo.NextValue(ctx, "account:"+prefix)
	if err != nil {
		logger.Error("Failed to advance account code sequence", slog.String("prefix", prefix), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to generate account code: %w", err)
	}

	return fmt.Sprintf("%s%04d", prefix, next), nil
}

// NextTransactionNumber returns the next number for the given transaction
// type, e.g. SAL000001.
func (s *NumberingService) NextTransactionNumber(ctx context.Context, txnType domain.TransactionType) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	prefix := typePrefix(string(txnType))

	next, err := s.sequenceRepo.NextValue(ctx, "transaction:"+prefix)
	if err != nil {
		logger.Error("Failed to advance transaction number sequence", slog.String("prefix", prefix), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to generate transaction number: %w", err)
	}

	return fmt.Sprintf("%s%06d", prefix, next), nil
}

// NextDocumentNumber returns the next document number for the prefix, scoped
// per calendar month of at, e.g. INV-202609-0001.
func (s *NumberingService) NextDocumentNumber(ctx context.Context, prefix string, at time.Time) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	month := at.Format("200601")
	normalized := strings.ToUpper(prefix)

	next, err := s.sequenceRepo.NextValue(ctx, fmt.Sprintf("document:%s:%s", normalized, month))
	if err != nil {
		logger.Error("Failed to advance document number sequence", slog.String("prefix", normalized), slog.String("month", month), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to generate document number: %w", err)
	}

	return fmt.Sprintf("%s-%s-%04d", normalized, month, next), nil
}
