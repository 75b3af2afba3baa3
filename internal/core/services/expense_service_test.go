package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockSettings    *MockSettingsService
	service         portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockSettings = new(MockSettingsService)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockSettings)
}

func (suite *ExpenseServiceTestSuite) settingsFixture(userID string) *domain.Settings {
	s := domain.DefaultSettings(userID)
	return &s
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.CreateExpenseRequest{
		Date:          "2025-03-15",
		Amount:        decimal.NewFromInt(2500),
		PaymentMethod: "Cash",
		Category:      "Groceries",
		Note:          "weekly shop",
	}

	suite.mockSettings.On("GetSettings", ctx, userID).Return(suite.settingsFixture(userID), nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal(userID, expense.UserID)
	suite.Equal("2025-03-15", expense.Date)
	suite.True(expense.Amount.Equal(decimal.NewFromInt(2500)))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:          "2025-03-15",
		Amount:        decimal.Zero,
		PaymentMethod: "Cash",
		Category:      "Groceries",
	}

	_, err := suite.service.CreateExpense(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsUnknownCategory() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.CreateExpenseRequest{
		Date:          "2025-03-15",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "Cash",
		Category:      "Empanadas",
	}

	suite.mockSettings.On("GetSettings", ctx, userID).Return(suite.settingsFixture(userID), nil).Once()

	_, err := suite.service.CreateExpense(ctx, userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpenses_BatchSavesOnce() {
	ctx := context.Background()
	userID := "user-1"
	reqs := []dto.CreateExpenseRequest{
		{Date: "2025-03-15", Amount: decimal.NewFromInt(2500), PaymentMethod: "Cash", Category: "Groceries"},
		{Date: "2025-03-16", Amount: decimal.NewFromInt(800), PaymentMethod: "Cash", Category: "Groceries"},
	}

	suite.mockSettings.On("GetSettings", ctx, userID).Return(suite.settingsFixture(userID), nil).Twice()
	suite.mockExpenseRepo.On("SaveExpenses", ctx, mock.MatchedBy(func(expenses []domain.Expense) bool {
		return len(expenses) == 2
	})).Return(nil).Once()

	expenses, err := suite.service.CreateExpenses(ctx, userID, reqs)

	suite.Require().NoError(err)
	suite.Require().Len(expenses, 2)
	suite.NotEmpty(expenses[0].ExpenseID)
	suite.Equal(userID, expenses[1].UserID)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpenses_RejectsWholeBatchOnBadRow() {
	ctx := context.Background()
	userID := "user-1"
	reqs := []dto.CreateExpenseRequest{
		{Date: "2025-03-15", Amount: decimal.NewFromInt(2500), PaymentMethod: "Cash", Category: "Groceries"},
		{Date: "2025-13-40", Amount: decimal.NewFromInt(800), PaymentMethod: "Cash", Category: "Groceries"},
	}

	suite.mockSettings.On("GetSettings", ctx, userID).Return(suite.settingsFixture(userID), nil).Maybe()

	_, err := suite.service.CreateExpenses(ctx, userID, reqs)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpenses")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpenses_EmptyInputSkipsRepo() {
	expenses, err := suite.service.CreateExpenses(context.Background(), "user-1", nil)

	suite.Require().NoError(err)
	suite.Empty(expenses)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpenses")
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_PartialUpdateKeepsOtherFields() {
	ctx := context.Background()
	userID := "user-1"
	existing := &domain.Expense{
		ExpenseID:     "exp-1",
		UserID:        userID,
		Date:          "2025-03-15",
		Amount:        decimal.NewFromInt(2500),
		PaymentMethod: "Cash",
		Category:      "Groceries",
		Note:          "weekly shop",
	}
	newAmount := decimal.NewFromInt(3000)
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, userID, "exp-1").Return(existing, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(newAmount) && e.Category == "Groceries" && e.Note == "weekly shop"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, userID, "exp-1", req)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Equal("2025-03-15", updated.Date)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "user-1", "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateExpense(ctx, "user-1", "missing", dto.UpdateExpenseRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestBulkDeleteExpenses_ReportsDeletedIDs() {
	ctx := context.Background()
	userID := "user-1"
	requested := []string{"exp-1", "exp-2", "missing"}

	suite.mockExpenseRepo.On("DeleteExpenses", ctx, userID, requested).Return([]string{"exp-1", "exp-2"}, nil).Once()

	deleted, err := suite.service.BulkDeleteExpenses(ctx, userID, requested)

	suite.Require().NoError(err)
	suite.Equal([]string{"exp-1", "exp-2"}, deleted)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestBulkDeleteExpenses_EmptyInputSkipsRepo() {
	ctx := context.Background()

	deleted, err := suite.service.BulkDeleteExpenses(ctx, "user-1", nil)

	suite.Require().NoError(err)
	suite.Empty(deleted)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpenses")
}

func (suite *ExpenseServiceTestSuite) TestListExpensesByYear_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpensesByYear", ctx, "user-1", 2025).Return([]domain.Expense{}, nil).Once()

	expenses, err := suite.service.ListExpensesByYear(ctx, "user-1", 2025)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
