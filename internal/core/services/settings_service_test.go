package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_FallsBackToDefaults() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindSettings", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultPaymentMethods, settings.PaymentMethods)
	suite.Equal(domain.DefaultCategories, settings.Categories)
	suite.Contains(settings.Categories, domain.InvestmentsCategory)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_ReturnsStored() {
	ctx := context.Background()
	stored := &domain.Settings{
		UserID:         "user-1",
		PaymentMethods: []string{"Cash"},
		Categories:     []string{"Groceries"},
	}

	suite.mockSettingsRepo.On("FindSettings", ctx, "user-1").Return(stored, nil).Once()

	settings, err := suite.service.GetSettings(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal([]string{"Cash"}, settings.PaymentMethods)
}

func (suite *SettingsServiceTestSuite) TestSaveSettings_TrimsAndPersists() {
	ctx := context.Background()
	req := dto.SaveSettingsRequest{
		PaymentMethods: []string{"  Cash ", "Wise"},
		Categories:     []string{"Groceries", " Travel"},
	}

	suite.mockSettingsRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.UserID == "user-1" && len(s.PaymentMethods) == 2 && s.PaymentMethods[0] == "Cash" && s.Categories[1] == "Travel"
	})).Return(nil).Once()

	settings, err := suite.service.SaveSettings(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal([]string{"Cash", "Wise"}, settings.PaymentMethods)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSaveSettings_RejectsDuplicates() {
	ctx := context.Background()
	req := dto.SaveSettingsRequest{
		PaymentMethods: []string{"Cash", "cash"},
		Categories:     []string{"Groceries"},
	}

	_, err := suite.service.SaveSettings(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveSettings")
}

func (suite *SettingsServiceTestSuite) TestSaveSettings_RejectsAllBlank() {
	ctx := context.Background()
	req := dto.SaveSettingsRequest{
		PaymentMethods: []string{"  ", ""},
		Categories:     []string{"Groceries"},
	}

	_, err := suite.service.SaveSettings(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
