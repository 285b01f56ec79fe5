package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/financas-app/backend/internal/finance"
	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/financas-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for daily expenses and
// their aggregations with the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/adicionar", httputil.OptionsPost)
	r.POST("/adicionar", CreateExpense)

	r.OPTIONS("/mostrar/:user_id", httputil.OptionsGet)
	r.GET("/mostrar/:user_id", GetExpenses)

	r.OPTIONS("/alterar/:id", httputil.OptionsPutDelete)
	r.PUT("/alterar/:id", UpdateExpense)

	r.OPTIONS("/deletar/:id", httputil.OptionsPutDelete)
	r.DELETE("/deletar/:id", DeleteExpense)

	// Aggregations
	r.OPTIONS("/total-gasto-mes/:user_id/:mes/:ano", httputil.OptionsGet)
	r.GET("/total-gasto-mes/:user_id/:mes/:ano", GetMonthTotal)

	r.OPTIONS("/total-gasto-categoria/:user_id/:mes/:ano", httputil.OptionsGet)
	r.GET("/total-gasto-categoria/:user_id/:mes/:ano", GetCategoryTotals)

	r.OPTIONS("/percentual-gasto-categoria/:user_id/:mes/:ano", httputil.OptionsGet)
	r.GET("/percentual-gasto-categoria/:user_id/:mes/:ano", GetCategoryPercentages)

	r.OPTIONS("/total-gasto-mes-ano/:user_id/:ano", httputil.OptionsGet)
	r.GET("/total-gasto-mes-ano/:user_id/:ano", GetYearlySeries)
}

type ExpenseCreateRequest struct {
	UserID      uint             `json:"user_id"`
	Description string           `json:"descricao"`
	Amount      *decimal.Decimal `json:"valor"`
	Category    models.Category  `json:"categoria"`
	Date        types.Date       `json:"data_registro"`
}

type ExpenseUpdateRequest struct {
	Description *string          `json:"descricao"`
	Amount      *decimal.Decimal `json:"valor"`
	Category    *models.Category `json:"categoria"`
	Date        *types.Date      `json:"data_registro"`
}

// CreateExpense creates a new daily expense. All fields are required.
func CreateExpense(c *gin.Context) {
	var request ExpenseCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.UserID == 0 || request.Description == "" || request.Amount == nil || request.Category == "" || request.Date.IsZero() {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrMissingFields.Error()})
		return
	}

	expense := models.Expense{
		UserID:      request.UserID,
		Description: request.Description,
		Amount:      *request.Amount,
		Category:    request.Category,
		Date:        request.Date,
	}

	if err := models.DB.Create(&expense).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Gasto diário criado com sucesso",
		"gasto_diario": expense,
	})
}

// GetExpenses lists the user's daily expenses.
func GetExpenses(c *gin.Context) {
	var uri UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	expenses, err := userExpenses(uri.UserID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if len(expenses) == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "Nenhum gasto encontrado para o usuário"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"gastos": expenses})
}

// UpdateExpense partially updates a daily expense.
func UpdateExpense(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	if err := models.DB.First(&expense, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var request ExpenseUpdateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Description != nil {
		expense.Description = *request.Description
	}
	if request.Amount != nil {
		expense.Amount = *request.Amount
	}
	if request.Category != nil {
		expense.Category = *request.Category
	}
	if request.Date != nil {
		expense.Date = *request.Date
	}

	if err := models.DB.Save(&expense).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Gasto alterado com sucesso",
		"gasto":   expense,
	})
}

// DeleteExpense deletes a daily expense.
func DeleteExpense(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var expense models.Expense
	if err := models.DB.First(&expense, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gasto deletado com sucesso"})
}

// GetMonthTotal returns the total and the number of expenses of a month.
func GetMonthTotal(c *gin.Context) {
	uri, expenses, err := monthExpenses(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	total, count := finance.MonthExpenseTotal(expenses, uri.Year, time.Month(uri.Month))

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"gastos": count,
	})
}

// GetCategoryTotals returns the per-category totals of a month. Every
// category is present, with zero for categories without expenses.
func GetCategoryTotals(c *gin.Context) {
	uri, expenses, err := monthExpenses(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	totals := finance.CategoryTotals(expenses, uri.Year, time.Month(uri.Month))

	c.JSON(http.StatusOK, gin.H{"total_por_categoria": totals})
}

// GetCategoryPercentages returns each category's share of the month's
// spending, rounded to one decimal place. All shares are zero when
// nothing was spent.
func GetCategoryPercentages(c *gin.Context) {
	uri, expenses, err := monthExpenses(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	totals := finance.CategoryTotals(expenses, uri.Year, time.Month(uri.Month))
	grandTotal, _ := finance.MonthExpenseTotal(expenses, uri.Year, time.Month(uri.Month))

	percentages := make(map[models.Category]decimal.Decimal, len(totals))
	for category, percent := range finance.CategoryPercentages(totals, grandTotal) {
		percentages[category] = finance.DisplayPercent(percent)
	}

	c.JSON(http.StatusOK, gin.H{"percentual_por_categoria": percentages})
}

// GetYearlySeries returns the total spent in every month of a year,
// keyed "1" through "12".
func GetYearlySeries(c *gin.Context) {
	var uri YearURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	expenses, err := userExpenses(uri.UserID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	series := finance.YearlySeries(expenses, uri.Year)

	totals := make(map[string]decimal.Decimal, len(series))
	for i, total := range series {
		totals[strconv.Itoa(i+1)] = total
	}

	c.JSON(http.StatusOK, gin.H{"total_por_mes": totals})
}

// userExpenses loads all expenses of the user, verifying that the user
// exists first.
func userExpenses(userID uint) ([]models.Expense, error) {
	var user models.User
	if err := models.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0)
	if err := models.DB.Where(&models.Expense{UserID: userID}).Find(&expenses).Error; err != nil {
		return nil, err
	}

	return expenses, nil
}

// monthExpenses binds the user/month/year URI and loads the user's
// expenses for the aggregation endpoints.
func monthExpenses(c *gin.Context) (MonthURI, []models.Expense, error) {
	var uri MonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return uri, nil, err
	}

	if uri.Month < 1 || uri.Month > 12 {
		return uri, nil, models.ErrMonthInvalid
	}

	expenses, err := userExpenses(uri.UserID)
	if err != nil {
		return uri, nil, err
	}

	return uri, expenses, nil
}
