package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mosaicsoft/bizbooks/internal/apperrors"
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/mosaicsoft/bizbooks/internal/core/ports/services"
	"github.com/mosaicsoft/bizbooks/internal/core/services"
	"github.com/mosaicsoft/bizbooks/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.Entry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	args := m.Called(ctx, txn, entries)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkApproved(ctx context.Context, transactionID string, approvedBy string, now time.Time) error {
	args := m.Called(ctx, transactionID, approvedBy, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkRejected(ctx context.Context, transactionID string, rejectedBy string, now time.Time) error {
	args := m.Called(ctx, transactionID, rejectedBy, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkReconciled(ctx context.Context, transactionID string, reconciledBy string, now time.Time) error {
	args := m.Called(ctx, transactionID, reconciledBy, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) PostTransaction(ctx context.Context, transactionID string, entries []domain.Entry, deltas map[string]decimal.Decimal, postedBy string, now time.Time) error {
	args := m.Called(ctx, transactionID, entries, deltas, postedBy, now)
	return args.Error(0)
}

// --- Mock AccountService (as consumed by TransactionService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetChartOfAccounts(ctx context.Context) ([]dto.ChartAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ChartAccount), args.Error(1)
}

func (m *MockAccountService) GetBalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockAccountSvc *MockAccountService
	mockNumbering  *MockNumberingService
	service        *services.TransactionService
	userID         string
	cashAccount    domain.Account
	revenueAccount domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockNumbering = new(MockNumberingService)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountSvc, suite.mockNumbering)

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "ASS0001",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "REV0001",
		Name:        "Sales Revenue",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
}

func (suite *TransactionServiceTestSuite) saleRequest(amount int64) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		Type:        domain.Sale,
		Description: "Cash sale",
		Entries: []dto.EntryRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(amount)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(amount)},
		},
	}
}

func (suite *TransactionServiceTestSuite) expectAccountsLookup() {
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accountsMap, nil)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := suite.saleRequest(100)

	suite.expectAccountsLookup()
	suite.mockNumbering.On("NextTransactionNumber", ctx, domain.Sale).Return("SAL000001", nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("SAL000001", txn.TransactionNumber)
	suite.Equal(domain.StatusDraft, txn.Status)
	suite.Len(txn.Entries, 2)
	suite.Equal(1, txn.Entries[0].LineNo)
	suite.Equal(2, txn.Entries[1].LineNo)
	suite.Equal(suite.userID, txn.CreatedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RequestedPendingStatus() {
	ctx := context.Background()
	req := suite.saleRequest(100)
	pending := domain.StatusPending
	req.Status = &pending

	suite.expectAccountsLookup()
	suite.mockNumbering.On("NextTransactionNumber", ctx, domain.Sale).Return("SAL000002", nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, txn.Status)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Type:        domain.Sale,
		Description: "Does not balance",
		Entries: []dto.EntryRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)

	var unbalanced *apperrors.UnbalancedError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.True(unbalanced.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(unbalanced.TotalCredit.Equal(decimal.NewFromInt(90)))
	suite.True(unbalanced.Delta().Equal(decimal.NewFromInt(10)))

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextTransactionNumber")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WithinTolerance() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Type:        domain.Sale,
		Description: "Rounding residue",
		Entries: []dto.EntryRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromFloat(100.004)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.expectAccountsLookup()
	suite.mockNumbering.On("NextTransactionNumber", ctx, domain.Sale).Return("SAL000003", nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.Entry")).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SingleEntryRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Type:        domain.Journal,
		Description: "One-sided",
		Entries: []dto.EntryRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactiveAccount() {
	ctx := context.Background()
	suite.revenueAccount.IsActive = false
	req := suite.saleRequest(100)

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accountsMap, nil)

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_FromDraft() {
	ctx := context.Background()
	txnID := uuid.NewString()
	draft := &domain.Transaction{TransactionID: txnID, Status: domain.StatusDraft}
	approved := &domain.Transaction{TransactionID: txnID, Status: domain.StatusApproved}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(draft, nil).Once()
	suite.mockTxnRepo.On("MarkApproved", ctx, txnID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(approved, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return([]domain.Entry{}, nil).Once()

	result, err := suite.service.ApproveTransaction(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, result.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_AlreadyPosted() {
	ctx := context.Background()
	txnID := uuid.NewString()
	posted := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(posted, nil).Once()

	_, err := suite.service.ApproveTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "MarkApproved")
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_FromApproved() {
	ctx := context.Background()
	txnID := uuid.NewString()
	approved := &domain.Transaction{TransactionID: txnID, Status: domain.StatusApproved}
	rejected := &domain.Transaction{TransactionID: txnID, Status: domain.StatusRejected}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(approved, nil).Once()
	suite.mockTxnRepo.On("MarkRejected", ctx, txnID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(rejected, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return([]domain.Entry{}, nil).Once()

	result, err := suite.service.RejectTransaction(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, result.Status)
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_PostedIsImmutable() {
	ctx := context.Background()
	txnID := uuid.NewString()
	posted := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(posted, nil).Once()

	_, err := suite.service.RejectTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "MarkRejected")
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_RejectedIsTerminal() {
	ctx := context.Background()
	txnID := uuid.NewString()
	rejected := &domain.Transaction{TransactionID: txnID, Status: domain.StatusRejected}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(rejected, nil).Once()

	_, err := suite.service.RejectTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *TransactionServiceTestSuite) postableTransaction(txnID string) (*domain.Transaction, []domain.Entry) {
	entries := []domain.Entry{
		{EntryID: uuid.NewString(), TransactionID: txnID, AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100), Credit: decimal.Zero, LineNo: 1},
		{EntryID: uuid.NewString(), TransactionID: txnID, AccountID: suite.revenueAccount.AccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(100), LineNo: 2},
	}
	txn := &domain.Transaction{
		TransactionID:     txnID,
		TransactionNumber: "SAL000001",
		TransactionType:   domain.Sale,
		Status:            domain.StatusApproved,
	}
	return txn, entries
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_AppliesSignedDeltas() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn, entries := suite.postableTransaction(txnID)
	posted := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()
	suite.expectAccountsLookup()

	var capturedDeltas map[string]decimal.Decimal
	suite.mockTxnRepo.On("PostTransaction", ctx, txnID, entries, mock.AnythingOfType("map[string]decimal.Decimal"), suite.userID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			capturedDeltas = args.Get(3).(map[string]decimal.Decimal)
		}).Return(nil).Once()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(posted, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()

	result, err := suite.service.PostTransaction(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPosted, result.Status)

	// Sale: cash up by 100, revenue down by 100 in raw debit-minus-credit terms.
	suite.Require().Len(capturedDeltas, 2)
	suite.True(capturedDeltas[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(100)))
	suite.True(capturedDeltas[suite.revenueAccount.AccountID].Equal(decimal.NewFromInt(-100)))
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_UnbalancedEntriesAbort() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn, entries := suite.postableTransaction(txnID)
	entries[1].Credit = decimal.NewFromInt(90)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(entries, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)

	var unbalanced *apperrors.UnbalancedError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.True(unbalanced.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(unbalanced.TotalCredit.Equal(decimal.NewFromInt(90)))

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "PostTransaction")
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountsByIDs")
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_RequiresApproved() {
	ctx := context.Background()
	txnID := uuid.NewString()
	draft := &domain.Transaction{TransactionID: txnID, Status: domain.StatusDraft}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(draft, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return([]domain.Entry{}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *TransactionServiceTestSuite) TestPostTransaction_SecondPostFails() {
	ctx := context.Background()
	txnID := uuid.NewString()
	posted := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(posted, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return([]domain.Entry{}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *TransactionServiceTestSuite) TestReconcileTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	posted := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted}
	reconciled := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted, IsReconciled: true}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(posted, nil).Once()
	suite.mockTxnRepo.On("MarkReconciled", ctx, txnID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(reconciled, nil).Once()
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return([]domain.Entry{}, nil).Once()

	result, err := suite.service.ReconcileTransaction(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.IsReconciled)
}

func (suite *TransactionServiceTestSuite) TestReconcileTransaction_Idempotent() {
	ctx := context.Background()
	txnID := uuid.NewString()
	reconciled := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPosted, IsReconciled: true}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(reconciled, nil)
	suite.mockTxnRepo.On("FindEntriesByTransactionID", ctx, txnID).Return([]domain.Entry{}, nil).Once()

	result, err := suite.service.ReconcileTransaction(ctx, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.IsReconciled)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "MarkReconciled")
}

func (suite *TransactionServiceTestSuite) TestReconcileTransaction_RequiresPosted() {
	ctx := context.Background()
	txnID := uuid.NewString()
	draft := &domain.Transaction{TransactionID: txnID, Status: domain.StatusDraft}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(draft, nil).Once()

	_, err := suite.service.ReconcileTransaction(ctx, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "MarkReconciled")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
