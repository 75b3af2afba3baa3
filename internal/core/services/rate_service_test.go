package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockRateRepository
	service      portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.service = services.NewRateService(suite.mockRateRepo)
}

func overridesFixture(userID string) []domain.RateOverride {
	return []domain.RateOverride{
		{UserID: userID, MonthKey: "2025-01", Rate: decimal.NewFromInt(1200)},
		{UserID: userID, MonthKey: "2025-03", Rate: decimal.NewFromInt(1450)},
	}
}

func (suite *RateServiceTestSuite) TestGetRates_ReturnsFullMap() {
	ctx := context.Background()
	userID := "user-1"
	suite.mockRateRepo.On("FindRateOverrides", ctx, userID).Return(overridesFixture(userID), nil).Once()

	rates, err := suite.service.GetRates(ctx, userID)

	suite.Require().NoError(err)
	suite.Len(rates, 2)
	suite.True(rates["2025-01"].Equal(decimal.NewFromInt(1200)))
	suite.True(rates["2025-03"].Equal(decimal.NewFromInt(1450)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolveRate_ExactMatch() {
	ctx := context.Background()
	userID := "user-1"
	suite.mockRateRepo.On("FindRateOverrides", ctx, userID).Return(overridesFixture(userID), nil).Once()

	rate, hasOverride, err := suite.service.ResolveRate(ctx, userID, "2025-03")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1450)))
	suite.True(hasOverride)
}

func (suite *RateServiceTestSuite) TestResolveRate_FallsBackToEarlierMonth() {
	ctx := context.Background()
	userID := "user-1"
	suite.mockRateRepo.On("FindRateOverrides", ctx, userID).Return(overridesFixture(userID), nil).Once()

	rate, hasOverride, err := suite.service.ResolveRate(ctx, userID, "2025-02")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1200)))
	suite.False(hasOverride)
}

func (suite *RateServiceTestSuite) TestResolveRate_DefaultWhenNoPriorOverride() {
	ctx := context.Background()
	userID := "user-1"
	suite.mockRateRepo.On("FindRateOverrides", ctx, userID).Return([]domain.RateOverride{}, nil).Once()

	rate, hasOverride, err := suite.service.ResolveRate(ctx, userID, "2024-06")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1000)))
	suite.False(hasOverride)
}

func (suite *RateServiceTestSuite) TestResolveRate_RejectsBadMonthKey() {
	ctx := context.Background()

	_, _, err := suite.service.ResolveRate(ctx, "user-1", "2025-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateOverrides")
}

func (suite *RateServiceTestSuite) TestUpsertRate_ReturnsUpdatedMap() {
	ctx := context.Background()
	userID := "user-1"
	newRate := decimal.NewFromInt(1500)

	suite.mockRateRepo.On("UpsertRateOverride", ctx, mock.MatchedBy(func(o domain.RateOverride) bool {
		return o.UserID == userID && o.MonthKey == "2025-04" && o.Rate.Equal(newRate)
	})).Return(nil).Once()
	updated := append(overridesFixture(userID), domain.RateOverride{UserID: userID, MonthKey: "2025-04", Rate: newRate})
	suite.mockRateRepo.On("FindRateOverrides", ctx, userID).Return(updated, nil).Once()

	rates, err := suite.service.UpsertRate(ctx, userID, "2025-04", newRate)

	suite.Require().NoError(err)
	suite.Len(rates, 3)
	suite.True(rates["2025-04"].Equal(newRate))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestUpsertRate_RejectsNonPositiveRate() {
	ctx := context.Background()

	_, err := suite.service.UpsertRate(ctx, "user-1", "2025-04", decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertRateOverride")
}

func (suite *RateServiceTestSuite) TestDeleteRate_ReturnsRemainingMap() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockRateRepo.On("DeleteRateOverride", ctx, userID, "2025-03").Return(nil).Once()
	remaining := []domain.RateOverride{{UserID: userID, MonthKey: "2025-01", Rate: decimal.NewFromInt(1200)}}
	suite.mockRateRepo.On("FindRateOverrides", ctx, userID).Return(remaining, nil).Once()

	rates, err := suite.service.DeleteRate(ctx, userID, "2025-03")

	suite.Require().NoError(err)
	suite.Len(rates, 1)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
