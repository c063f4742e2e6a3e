package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kessan-app/kessan_backend/internal/apperrors"
	"github.com/kessan-app/kessan_backend/internal/core/domain"
	portssvc "github.com/kessan-app/kessan_backend/internal/core/ports/services"
	"github.com/kessan-app/kessan_backend/internal/core/services"
	"github.com/kessan-app/kessan_backend/internal/dto"
)

// --- Test Suite Setup ---

type PeriodServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPeriodRepository
	service  portssvc.PeriodSvcFacade

	companyID string
	userID    string
	fy2025    domain.FiscalPeriod
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPeriodRepository)
	suite.service = services.NewPeriodService(suite.mockRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.fy2025 = domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "FY2025",
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

// --- CreatePeriod ---

func (suite *PeriodServiceTestSuite) TestCreatePeriod_FirstPeriod() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2025",
		StartDate: suite.fy2025.StartDate,
		EndDate:   suite.fy2025.EndDate,
	}

	suite.mockRepo.On("FindLatestPeriod", ctx, suite.companyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.FiscalPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.NotEmpty(period.PeriodID)
	suite.False(period.Closed)
	suite.Equal(suite.userID, period.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Contiguous() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2026",
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("FindLatestPeriod", ctx, suite.companyID).Return(&suite.fy2025, nil).Once()
	suite.mockRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.FiscalPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("FY2026", period.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Overlap() {
	ctx := context.Background()
	// Starts inside FY2025 instead of the day after its end.
	req := dto.CreatePeriodRequest{
		Name:      "FY2026",
		StartDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 3, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("FindLatestPeriod", ctx, suite.companyID).Return(&suite.fy2025, nil).Once()

	_, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodOverlap)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Gap() {
	ctx := context.Background()
	// Leaves April 2026 uncovered.
	req := dto.CreatePeriodRequest{
		Name:      "FY2026",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("FindLatestPeriod", ctx, suite.companyID).Return(&suite.fy2025, nil).Once()

	_, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodNotContiguous)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_StartNotBeforeEnd() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "Broken",
		StartDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreatePeriod(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindLatestPeriod", mock.Anything, mock.Anything)
}

// --- GetPeriodByID ---

func (suite *PeriodServiceTestSuite) TestGetPeriodByID_WrongCompany() {
	ctx := context.Background()
	other := suite.fy2025
	other.CompanyID = uuid.NewString()

	suite.mockRepo.On("FindPeriodByID", ctx, suite.fy2025.PeriodID).Return(&other, nil).Once()

	_, err := suite.service.GetPeriodByID(ctx, suite.companyID, suite.fy2025.PeriodID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ClosePeriod ---

func (suite *PeriodServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindPeriodByID", ctx, suite.fy2025.PeriodID).Return(&suite.fy2025, nil).Once()
	suite.mockRepo.On("ClosePeriod", ctx, suite.fy2025.PeriodID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ClosePeriod(ctx, suite.companyID, suite.fy2025.PeriodID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	closed := suite.fy2025
	closed.Closed = true

	suite.mockRepo.On("FindPeriodByID", ctx, suite.fy2025.PeriodID).Return(&closed, nil).Once()
	suite.mockRepo.On("ClosePeriod", ctx, suite.fy2025.PeriodID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrPeriodClosed).Once()

	err := suite.service.ClosePeriod(ctx, suite.companyID, suite.fy2025.PeriodID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
