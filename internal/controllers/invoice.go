package controllers

import (
	"net/http"
	"time"

	"github.com/financas-app/backend/internal/finance"
	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers the invoice history routes with the
// RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/arquivar", httputil.OptionsPost)
	r.POST("/arquivar", ArchiveInvoice)

	r.OPTIONS("/mostrar/:user_id", httputil.OptionsGet)
	r.GET("/mostrar/:user_id", GetInvoices)
}

type InvoiceArchiveRequest struct {
	UserID uint `json:"user_id"`
	Month  int  `json:"mes"`
	Year   int  `json:"ano"`
}

// ArchiveInvoice computes the month's totals and stores them as the
// archived invoice of that month, replacing an existing snapshot for the
// same month.
func ArchiveInvoice(c *gin.Context) {
	var request InvoiceArchiveRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.UserID == 0 || request.Month == 0 || request.Year == 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrMissingFields.Error()})
		return
	}

	if request.Month < 1 || request.Month > 12 {
		c.JSON(status(models.ErrMonthInvalid), httpError{Error: models.ErrMonthInvalid.Error()})
		return
	}

	figures, err := monthFigures(request.UserID, request.Year, time.Month(request.Month))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	committed := finance.CommittedTotal(figures.FixedBillTotal, figures.MonthExpenseTotal)

	invoice := models.InvoiceHistory{
		UserID: request.UserID,
		Year:   request.Year,
		Month:  request.Month,
	}

	// One snapshot per user and month: re-archiving overwrites
	err = models.DB.Where(&invoice).First(&invoice).Error
	if err != nil && status(err) != http.StatusNotFound {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	invoice.ExpenseTotal = figures.MonthExpenseTotal
	invoice.FixedBillTotal = figures.FixedBillTotal
	invoice.InstallmentTotal = figures.InstallmentRemaining
	invoice.FinalBalance = finance.AvailableBalance(figures.Salary, committed)

	if err := models.DB.Save(&invoice).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Fatura arquivada com sucesso",
		"fatura":  invoice,
	})
}

// GetInvoices lists the user's archived invoices, most recent month
// first.
func GetInvoices(c *gin.Context) {
	var uri UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var user models.User
	if err := models.DB.First(&user, uri.UserID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	invoices := make([]models.InvoiceHistory, 0)
	err := models.DB.Where(&models.InvoiceHistory{UserID: uri.UserID}).Order("ano DESC, mes DESC").Find(&invoices).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"historico": invoices})
}
