package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListChartOfAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasEntriesForAccount(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SumEntryDeltasAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, userID, now)
	return args.Error(0)
}

// --- Mock NumberingService ---
type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.NumberingSvcFacade = (*MockNumberingService)(nil)

func (m *MockNumberingService) NextAccountCode(ctx context.Context, accountType domain.AccountType) (string, error) {
	args := m.Called(ctx, accountType)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingService) NextTransactionNumber(ctx context.Context, txnType domain.TransactionType) (string, error) {
	args := m.Called(ctx, txnType)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingService) NextDocumentNumber(ctx context.Context, prefix string, at time.Time) (string, error) {
	args := m.Called(ctx, prefix, at)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockAccountRepository
	mockNumbering *MockNumberingService
	service       *services.AccountService
	userID        string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockNumbering = new(MockNumberingService)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockNumbering)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "CASH01",
		Name:        "Cash on Hand",
		AccountType: domain.Asset,
		Category:    "Current Assets",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("CASH01", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.True(account.IsActive)
	suite.True(account.OpeningBalance.IsZero())
	suite.True(account.CurrentBalance.IsZero())
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextAccountCode")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_GeneratesCodeWhenEmpty() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Sales Revenue",
		AccountType: domain.Revenue,
		Category:    "Operating Revenue",
	}

	suite.mockNumbering.On("NextAccountCode", ctx, domain.Revenue).Return("REV0001", nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Code == "REV0001"
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("REV0001", account.Code)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNumbering.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OpeningBalanceSeedsCurrentBalance() {
	ctx := context.Background()
	opening := decimal.NewFromInt(500)
	req := dto.CreateAccountRequest{
		Code:           "BANK01",
		Name:           "Main Bank Account",
		AccountType:    domain.Asset,
		Category:       "Current Assets",
		OpeningBalance: &opening,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(account.OpeningBalance.Equal(opening))
	suite.True(account.CurrentBalance.Equal(opening))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "CASH01",
		Name:        "Cash Again",
		AccountType: domain.Asset,
		Category:    "Current Assets",
	}

	conflictErr := apperrors.NewAppError(409, "account code already exists", apperrors.ErrConflict)
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(conflictErr).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "SUB001",
		Name:            "Sub Account",
		AccountType:     domain.Asset,
		Category:        "Current Assets",
		ParentAccountID: &parentID,
	}

	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentTypeMismatch() {
	ctx := context.Background()
	parentID := uuid.NewString()
	parent := &domain.Account{AccountID: parentID, AccountType: domain.Liability, IsActive: true}
	req := dto.CreateAccountRequest{
		Code:            "SUB001",
		Name:            "Sub Account",
		AccountType:     domain.Asset,
		Category:        "Current Assets",
		ParentAccountID: &parentID,
	}

	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(parent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RejectsSelfParent() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, AccountType: domain.Asset, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{ParentAccountID: &accountID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RejectsCycle() {
	ctx := context.Background()
	// grandparent <- parent <- child; reparenting grandparent under child
	// would close the loop.
	grandparentID := uuid.NewString()
	parentID := uuid.NewString()
	childID := uuid.NewString()

	grandparent := &domain.Account{AccountID: grandparentID, AccountType: domain.Asset, IsActive: true}
	parent := &domain.Account{AccountID: parentID, AccountType: domain.Asset, ParentAccountID: grandparentID, IsActive: true}
	child := &domain.Account{AccountID: childID, AccountType: domain.Asset, ParentAccountID: parentID, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, grandparentID).Return(grandparent, nil)
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(parent, nil)
	suite.mockRepo.On("FindAccountByID", ctx, childID).Return(child, nil)

	_, err := suite.service.UpdateAccount(ctx, grandparentID, dto.UpdateAccountRequest{ParentAccountID: &childID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Code: "CASH01", AccountType: domain.Asset, IsActive: true}

	suite.mockRepo.On("FindAccountByCode", ctx, "CASH01").Return(account, nil).Once()

	found, err := suite.service.GetAccountByCode(ctx, "CASH01")

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, found.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByCode", ctx, "NOPE01").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByCode(ctx, "NOPE01")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetBalanceAsOf() {
	ctx := context.Background()
	accountID := uuid.NewString()
	asOf := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	account := &domain.Account{
		AccountID:      accountID,
		AccountType:    domain.Asset,
		OpeningBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("SumEntryDeltasAsOf", ctx, accountID, asOf).Return(decimal.NewFromInt(250), nil).Once()

	balance, err := suite.service.GetBalanceAsOf(ctx, accountID, asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(1250)), "expected 1250, got %s", balance)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Code: "TMP001", AccountType: domain.Expense, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("HasEntriesForAccount", ctx, accountID).Return(false, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, accountID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_SystemAccountProtected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Code: "SYS001", AccountType: domain.Equity, IsActive: true, IsSystemAccount: true}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_ReferencedByEntries() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Code: "CASH01", AccountType: domain.Asset, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("HasEntriesForAccount", ctx, accountID).Return(true, nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestGetChartOfAccounts_ResolvesParents() {
	ctx := context.Background()
	parentID := uuid.NewString()
	childID := uuid.NewString()
	accounts := []domain.Account{
		{AccountID: parentID, Code: "ASS0001", Name: "Current Assets", AccountType: domain.Asset, IsActive: true},
		{AccountID: childID, Code: "ASS0002", Name: "Cash", AccountType: domain.Asset, ParentAccountID: parentID, IsActive: true},
	}

	suite.mockRepo.On("ListChartOfAccounts", ctx).Return(accounts, nil).Once()

	chart, err := suite.service.GetChartOfAccounts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(chart, 2)
	suite.Empty(chart[0].ParentCode)
	suite.Equal("ASS0001", chart[1].ParentCode)
	suite.Equal("Current Assets", chart[1].ParentName)
}

func (suite *AccountServiceTestSuite) TestGetChartOfAccounts_DisplayBalanceNegatesCreditNormal() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Code: "REV0001", Name: "Sales", AccountType: domain.Revenue, CurrentBalance: decimal.NewFromInt(-100), IsActive: true},
	}

	suite.mockRepo.On("ListChartOfAccounts", ctx).Return(accounts, nil).Once()

	chart, err := suite.service.GetChartOfAccounts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(chart, 1)
	suite.True(chart[0].CurrentBalance.Equal(decimal.NewFromInt(-100)))
	suite.True(chart[0].DisplayBalance.Equal(decimal.NewFromInt(100)))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
