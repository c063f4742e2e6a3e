package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/core/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	mockPeriodSvc   *MockPeriodService
	service         portssvc.LedgerSvcFacade

	companyID string
	userID    string

	openPeriod     domain.FiscalPeriod
	cashAccount    domain.Account
	salesAccount   domain.Account
	expenseAccount domain.Account
	adjOnlyAccount domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockPeriodSvc = new(MockPeriodService)
	suite.service = services.NewLedgerService(suite.mockJournalRepo, suite.mockAccountSvc, suite.mockPeriodSvc)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.openPeriod = domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "FY2025",
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Closed:    false,
	}

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Sales",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
	suite.expenseAccount = domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Name:        "Supplies Expense",
		AccountType: domain.Expense,
		IsActive:    true,
	}
	suite.adjOnlyAccount = domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      suite.companyID,
		Name:           "Accumulated Depreciation",
		AccountType:    domain.Asset,
		AdjustmentOnly: true,
		IsActive:       true,
	}
}

func (suite *LedgerServiceTestSuite) accountsByID(accounts ...domain.Account) map[string]domain.Account {
	m := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		m[acc.AccountID] = acc
	}
	return m
}

func (suite *LedgerServiceTestSuite) balancedRequest(amount decimal.Decimal) dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		PeriodID: suite.openPeriod.PeriodID,
		Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Kind:     domain.Normal,
		Memo:     "Cash sale",
		Lines: []dto.CreateLineRequest{
			{AccountID: suite.cashAccount.AccountID, Side: domain.Debit, Amount: amount},
			{AccountID: suite.salesAccount.AccountID, Side: domain.Credit, Amount: amount},
		},
	}
}

// --- PostEntry ---

func (suite *LedgerServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100000)
	req := suite.balancedRequest(amount)

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.salesAccount), nil).Once()

	var savedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil).Once()

	entry, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.Posted, entry.Status)
	suite.Equal(domain.Normal, entry.Kind)
	suite.Equal(suite.openPeriod.PeriodID, entry.PeriodID)
	suite.Len(entry.Lines, 2)
	suite.Equal(entry.EntryID, entry.Lines[0].EntryID)
	suite.Equal(suite.userID, entry.CreatedBy)

	// A debit to an asset and a credit to revenue both increase their balances.
	suite.Require().NotNil(savedChanges)
	suite.True(savedChanges[suite.cashAccount.AccountID].Equal(amount))
	suite.True(savedChanges[suite.salesAccount.AccountID].Equal(amount))

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockPeriodSvc.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_Unbalanced() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100000))
	req.Lines[1].Amount = decimal.NewFromInt(99999)

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.mockPeriodSvc.AssertNotCalled(suite.T(), "GetPeriodByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AllLinesOneSide() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(5000))
	req.Lines[1].Side = domain.Debit

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEmptyEntrySide)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_NegativeAmount() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(-100))

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_PeriodClosed() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100000))

	closedPeriod := suite.openPeriod
	closedPeriod.Closed = true
	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&closedPeriod, nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPeriodSvc.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AdjustmentNotAtPeriodEnd() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(25000))
	req.Kind = domain.Adjustment
	// Any date other than the period end is rejected for adjustments.
	req.Date = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidEntryDateForKind)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_NormalDateOutsidePeriod() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100))
	req.Date = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidEntryDateForKind)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AdjustmentOnlyAccountOnNormalEntry() {
	ctx := context.Background()
	amount := decimal.NewFromInt(25000)
	req := dto.CreateEntryRequest{
		PeriodID: suite.openPeriod.PeriodID,
		Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Kind:     domain.Normal,
		Memo:     "Attempted misuse",
		Lines: []dto.CreateLineRequest{
			{AccountID: suite.expenseAccount.AccountID, Side: domain.Debit, Amount: amount},
			{AccountID: suite.adjOnlyAccount.AccountID, Side: domain.Credit, Amount: amount},
		},
	}

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.expenseAccount, suite.adjOnlyAccount), nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAdjustmentAccountMisuse)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AdjustmentOnlyAccountOnAdjustmentEntry() {
	ctx := context.Background()
	amount := decimal.NewFromInt(25000)
	req := dto.CreateEntryRequest{
		PeriodID: suite.openPeriod.PeriodID,
		Date:     suite.openPeriod.EndDate,
		Kind:     domain.Adjustment,
		Memo:     "Depreciation for FY2025",
		Lines: []dto.CreateLineRequest{
			{AccountID: suite.expenseAccount.AccountID, Side: domain.Debit, Amount: amount},
			{AccountID: suite.adjOnlyAccount.AccountID, Side: domain.Credit, Amount: amount},
		},
	}

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.expenseAccount, suite.adjOnlyAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.Anything).
		Return(nil).Once()

	entry, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Adjustment, entry.Kind)
	suite.True(entry.Date.Equal(suite.openPeriod.EndDate))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.salesAccount
	inactive.IsActive = false
	req := suite.balancedRequest(decimal.NewFromInt(100))

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, inactive), nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountInactive)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AccountMissing() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100))

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	// The sales account is absent from the lookup result.
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount), nil).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_SaveError() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(100000))

	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.salesAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.Anything).
		Return(assert.AnError).Once()

	_, err := suite.service.PostEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

// --- Balance ---

func (suite *LedgerServiceTestSuite) TestBalance_DebitNormalAccount() {
	ctx := context.Background()
	asOf := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.companyID, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil).Once()
	suite.mockJournalRepo.On("SumLinesByAccount", ctx, suite.cashAccount.AccountID, asOf).
		Return(decimal.NewFromInt(150000), decimal.NewFromInt(50000), nil).Once()

	balance, err := suite.service.Balance(ctx, suite.companyID, suite.cashAccount.AccountID, asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(100000)))
}

func (suite *LedgerServiceTestSuite) TestBalance_CreditNormalAccount() {
	ctx := context.Background()
	asOf := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.companyID, suite.salesAccount.AccountID).Return(&suite.salesAccount, nil).Once()
	suite.mockJournalRepo.On("SumLinesByAccount", ctx, suite.salesAccount.AccountID, asOf).
		Return(decimal.NewFromInt(20000), decimal.NewFromInt(320000), nil).Once()

	balance, err := suite.service.Balance(ctx, suite.companyID, suite.salesAccount.AccountID, asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(300000)))
}

// --- GetEntryByID ---

func (suite *LedgerServiceTestSuite) TestGetEntryByID_WrongCompany() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:   entryID,
		CompanyID: uuid.NewString(), // some other company
		Status:    domain.Posted,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	_, err := suite.service.GetEntryByID(ctx, suite.companyID, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindLinesByEntryID", mock.Anything, mock.Anything)
}

// --- ReverseEntry ---

func (suite *LedgerServiceTestSuite) postedEntryFixture() (*domain.JournalEntry, []domain.JournalLine) {
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:   entryID,
		CompanyID: suite.companyID,
		PeriodID:  suite.openPeriod.PeriodID,
		Date:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Kind:      domain.Normal,
		Memo:      "Cash sale",
		Status:    domain.Posted,
	}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashAccount.AccountID, Side: domain.Debit, Amount: decimal.NewFromInt(100000)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.salesAccount.AccountID, Side: domain.Credit, Amount: decimal.NewFromInt(100000)},
	}
	return entry, lines
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_Success() {
	ctx := context.Background()
	original, lines := suite.postedEntryFixture()

	suite.mockJournalRepo.On("FindEntryByID", ctx, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, original.EntryID).Return(lines, nil).Once()
	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.salesAccount), nil).Once()

	var savedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatusAndLinks", ctx, original.EntryID, domain.Reversed, mock.AnythingOfType("*string"), suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, suite.companyID, original.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversal)
	suite.NotEqual(original.EntryID, reversal.EntryID)
	suite.Require().NotNil(reversal.OriginalEntryID)
	suite.Equal(original.EntryID, *reversal.OriginalEntryID)
	suite.Contains(reversal.Memo, "Reversal of entry")
	suite.Require().Len(reversal.Lines, 2)
	suite.Equal(domain.Credit, reversal.Lines[0].Side)
	suite.Equal(domain.Debit, reversal.Lines[1].Side)

	// The mirror entry undoes the original balance effect.
	suite.Require().NotNil(savedChanges)
	suite.True(savedChanges[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(-100000)))
	suite.True(savedChanges[suite.salesAccount.AccountID].Equal(decimal.NewFromInt(-100000)))

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_AlreadyReversed() {
	ctx := context.Background()
	original, lines := suite.postedEntryFixture()
	original.Status = domain.Reversed

	suite.mockJournalRepo.On("FindEntryByID", ctx, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, original.EntryID).Return(lines, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, suite.companyID, original.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_OfAReversal() {
	ctx := context.Background()
	original, lines := suite.postedEntryFixture()
	someID := uuid.NewString()
	original.OriginalEntryID = &someID

	suite.mockJournalRepo.On("FindEntryByID", ctx, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, original.EntryID).Return(lines, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, suite.companyID, original.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_PeriodClosed() {
	ctx := context.Background()
	original, lines := suite.postedEntryFixture()
	closedPeriod := suite.openPeriod
	closedPeriod.Closed = true

	suite.mockJournalRepo.On("FindEntryByID", ctx, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, original.EntryID).Return(lines, nil).Once()
	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&closedPeriod, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, suite.companyID, original.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteEntry ---

func (suite *LedgerServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	entry, lines := suite.postedEntryFixture()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("CountEntryReferences", ctx, entry.EntryID).Return(0, nil).Once()
	suite.mockPeriodSvc.On("GetPeriodByID", ctx, suite.companyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.accountsByID(suite.cashAccount, suite.salesAccount), nil).Once()

	var deletedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("DeleteEntry", ctx, entry.EntryID, mock.Anything).
		Run(func(args mock.Arguments) {
			deletedChanges = args.Get(2).(map[string]decimal.Decimal)
		}).
		Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.companyID, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	// Deletion rolls back the original +100000 effect on both accounts.
	suite.True(deletedChanges[suite.cashAccount.AccountID].Equal(decimal.NewFromInt(-100000)))
	suite.True(deletedChanges[suite.salesAccount.AccountID].Equal(decimal.NewFromInt(-100000)))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_Referenced() {
	ctx := context.Background()
	entry, lines := suite.postedEntryFixture()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entry.EntryID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("CountEntryReferences", ctx, entry.EntryID).Return(2, nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.companyID, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEntryReferenced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

// --- ListEntries ---

func (suite *LedgerServiceTestSuite) TestListEntries_DefaultLimit() {
	ctx := context.Background()
	entries := []domain.JournalEntry{
		{EntryID: uuid.NewString(), CompanyID: suite.companyID, Status: domain.Posted},
	}

	suite.mockJournalRepo.On("ListEntries", ctx, suite.companyID, 20, (*string)(nil)).Return(entries, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, suite.companyID, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Nil(resp.NextToken)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
