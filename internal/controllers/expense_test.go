package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/financas-app/backend/internal/controllers"
	"github.com/financas-app/backend/internal/models"
	"github.com/financas-app/backend/internal/types"
	"github.com/financas-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	amount := decimal.RequireFromString("42.50")
	expense := createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{
		Description: "Mercado",
		Amount:      &amount,
		Category:    models.CategoryFood,
		Date:        types.NewDate(2025, 3, 10),
	})

	suite.Assert().Equal("Mercado", expense.Description)
	suite.Assert().True(expense.Amount.Equal(amount))
	suite.Assert().True(expense.Date.Equal(types.NewDate(2025, 3, 10)))
}

func (suite *TestSuiteStandard) TestCreateExpenseErrors() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	amount := decimal.NewFromInt(10)

	tests := []struct {
		name string
		body controllers.ExpenseCreateRequest
	}{
		{"No description", controllers.ExpenseCreateRequest{UserID: user.ID, Amount: &amount, Category: models.CategoryFood, Date: types.Today()}},
		{"No amount", controllers.ExpenseCreateRequest{UserID: user.ID, Description: "Mercado", Category: models.CategoryFood, Date: types.Today()}},
		{"No date", controllers.ExpenseCreateRequest{UserID: user.ID, Description: "Mercado", Amount: &amount, Category: models.CategoryFood}},
		{"Unknown category", controllers.ExpenseCreateRequest{UserID: user.ID, Description: "Mercado", Amount: &amount, Category: "Cerveja", Date: types.Today()}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/registro/adicionar", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Description: "Mercado"})
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Description: "Padaria"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/mostrar/%d", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Expenses []models.Expense `json:"gastos"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Expenses, 2)
}

// A user without expenses gets a 404, matching the API contract.
func (suite *TestSuiteStandard) TestGetExpensesEmpty() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/mostrar/%d", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Nenhum gasto encontrado para o usuário", response.Error)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	expense := createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Description: "Mercado"})

	category := models.CategoryLeisure
	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/registro/alterar/%d", expense.ID), controllers.ExpenseUpdateRequest{
		Category: &category,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Expense models.Expense `json:"gasto"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.CategoryLeisure, response.Expense.Category)
	suite.Assert().Equal("Mercado", response.Expense.Description)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	expense := createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/registro/deletar/%d", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/registro/deletar/%d", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetMonthTotal() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	first := decimal.RequireFromString("100.50")
	second := decimal.RequireFromString("49.50")
	other := decimal.NewFromInt(999)
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &first, Date: types.NewDate(2025, 3, 1)})
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &second, Date: types.NewDate(2025, 3, 31)})
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &other, Date: types.NewDate(2025, 4, 1)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/total-gasto-mes/%d/3/2025", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Total decimal.Decimal `json:"total"`
		Count int             `json:"gastos"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Total.Equal(decimal.NewFromInt(150)), "total is %s", response.Total)
	suite.Assert().Equal(2, response.Count)
}

func (suite *TestSuiteStandard) TestGetMonthTotalErrors() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Unknown user", "http://example.com/registro/total-gasto-mes/4096/3/2025", http.StatusNotFound},
		{"Invalid month", fmt.Sprintf("http://example.com/registro/total-gasto-mes/%d/13/2025", user.ID), http.StatusBadRequest},
		{"Unparseable month", fmt.Sprintf("http://example.com/registro/total-gasto-mes/%d/march/2025", user.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategoryTotals() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	food := decimal.NewFromInt(80)
	transport := decimal.NewFromInt(20)
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &food, Category: models.CategoryFood, Date: types.NewDate(2025, 3, 10)})
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &transport, Category: models.CategoryTransport, Date: types.NewDate(2025, 3, 11)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/total-gasto-categoria/%d/3/2025", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Totals map[models.Category]decimal.Decimal `json:"total_por_categoria"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	// Every category is present, even without expenses
	suite.Assert().Len(response.Totals, len(models.Categories()))
	suite.Assert().True(response.Totals[models.CategoryFood].Equal(food))
	suite.Assert().True(response.Totals[models.CategoryLeisure].Equal(decimal.Zero))
}

func (suite *TestSuiteStandard) TestGetCategoryPercentages() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	food := decimal.NewFromInt(80)
	transport := decimal.NewFromInt(20)
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &food, Category: models.CategoryFood, Date: types.NewDate(2025, 3, 10)})
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &transport, Category: models.CategoryTransport, Date: types.NewDate(2025, 3, 11)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/percentual-gasto-categoria/%d/3/2025", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Percentages map[models.Category]decimal.Decimal `json:"percentual_por_categoria"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Percentages[models.CategoryFood].Equal(decimal.NewFromInt(80)))
	suite.Assert().True(response.Percentages[models.CategoryTransport].Equal(decimal.NewFromInt(20)))
	suite.Assert().True(response.Percentages[models.CategoryOther].Equal(decimal.Zero))
}

// A month without spending yields all-zero percentages, not an error.
func (suite *TestSuiteStandard) TestGetCategoryPercentagesZeroMonth() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/percentual-gasto-categoria/%d/3/2025", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Percentages map[models.Category]decimal.Decimal `json:"percentual_por_categoria"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	for category, percent := range response.Percentages {
		suite.Assert().True(percent.Equal(decimal.Zero), "category %s is %s", category, percent)
	}
}

func (suite *TestSuiteStandard) TestGetYearlySeries() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	march := decimal.NewFromInt(200)
	december := decimal.NewFromInt(50)
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &march, Date: types.NewDate(2025, 3, 10)})
	createTestExpense(suite.T(), user.ID, controllers.ExpenseCreateRequest{Amount: &december, Date: types.NewDate(2025, 12, 24)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/registro/total-gasto-mes-ano/%d/2025", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Totals map[string]decimal.Decimal `json:"total_por_mes"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Totals, 12)
	suite.Assert().True(response.Totals["3"].Equal(march))
	suite.Assert().True(response.Totals["12"].Equal(december))
	suite.Assert().True(response.Totals["1"].Equal(decimal.Zero))
}
