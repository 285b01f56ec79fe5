package controllers

import (
	"net/http"
	"time"

	"github.com/financas-app/backend/internal/dashboard"
	"github.com/financas-app/backend/internal/finance"
	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the dashboard aggregation routes
// with the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/salariomensal", httputil.OptionsGet)
	r.GET("/salariomensal", GetMonthlySalary)

	r.OPTIONS("/somacontasfixas", httputil.OptionsGet)
	r.GET("/somacontasfixas", GetFixedBillSum)

	r.OPTIONS("/totalparcelamentos", httputil.OptionsGet)
	r.GET("/totalparcelamentos", GetInstallmentTotal)

	r.OPTIONS("/resumo/:user_id/:mes/:ano", httputil.OptionsGet)
	r.GET("/resumo/:user_id/:mes/:ano", GetSummary)
}

// GetMonthlySalary returns the user's monthly salary.
func GetMonthlySalary(c *gin.Context) {
	user, err := queryUser(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"salario_mensal": user.MonthlySalary})
}

// GetFixedBillSum returns the sum of the user's active fixed bills.
func GetFixedBillSum(c *gin.Context) {
	user, err := queryUser(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var bills []models.FixedBill
	err = models.DB.Where(&models.FixedBill{UserID: user.ID}).Find(&bills).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"soma_contas_fixas": finance.FixedBillTotal(bills)})
}

// GetInstallmentTotal returns the remaining liability over the user's
// active installment plans and the number of active plans.
func GetInstallmentTotal(c *gin.Context) {
	user, err := queryUser(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var plans []models.InstallmentPlan
	err = models.DB.Where(&models.InstallmentPlan{UserID: user.ID}).Find(&plans).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	total, err := finance.InstallmentRemainingTotal(plans)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_parcelamentos":  total,
		"parcelamentos_ativos": finance.ActiveInstallmentCount(plans),
	})
}

// GetSummary returns the ordered dashboard cards for a month.
func GetSummary(c *gin.Context) {
	var uri MonthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if uri.Month < 1 || uri.Month > 12 {
		c.JSON(status(models.ErrMonthInvalid), httpError{Error: models.ErrMonthInvalid.Error()})
		return
	}

	figures, err := monthFigures(uri.UserID, uri.Year, time.Month(uri.Month))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartoes": dashboard.Cards(figures)})
}

// monthFigures loads everything the dashboard cards need for one month
// of one user.
func monthFigures(userID uint, year int, month time.Month) (dashboard.Figures, error) {
	var user models.User
	if err := models.DB.First(&user, userID).Error; err != nil {
		return dashboard.Figures{}, err
	}

	var bills []models.FixedBill
	if err := models.DB.Where(&models.FixedBill{UserID: userID}).Find(&bills).Error; err != nil {
		return dashboard.Figures{}, err
	}

	expenses := make([]models.Expense, 0)
	if err := models.DB.Where(&models.Expense{UserID: userID}).Find(&expenses).Error; err != nil {
		return dashboard.Figures{}, err
	}

	var plans []models.InstallmentPlan
	if err := models.DB.Where(&models.InstallmentPlan{UserID: userID}).Find(&plans).Error; err != nil {
		return dashboard.Figures{}, err
	}

	monthTotal, count := finance.MonthExpenseTotal(expenses, year, month)

	remaining, err := finance.InstallmentRemainingTotal(plans)
	if err != nil {
		return dashboard.Figures{}, err
	}

	activeBills := 0
	for _, bill := range bills {
		if bill.Active {
			activeBills++
		}
	}

	return dashboard.Figures{
		Salary:               user.MonthlySalary,
		FixedBillTotal:       finance.FixedBillTotal(bills),
		FixedBillCount:       activeBills,
		MonthExpenseTotal:    monthTotal,
		ExpenseCount:         count,
		InstallmentRemaining: remaining,
		ActiveInstallments:   finance.ActiveInstallmentCount(plans),
	}, nil
}
