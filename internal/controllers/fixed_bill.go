package controllers

import (
	"net/http"

	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterFixedBillRoutes registers the routes for fixed bills with
// the RouterGroup that is passed.
func RegisterFixedBillRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateFixedBill)

	r.OPTIONS("/minhascontas", httputil.OptionsGet)
	r.GET("/minhascontas", GetFixedBills)

	r.OPTIONS("/alterar/:id", httputil.OptionsPutDelete)
	r.PUT("/alterar/:id", UpdateFixedBill)

	r.OPTIONS("/deletar/:id", httputil.OptionsPutDelete)
	r.DELETE("/deletar/:id", DeleteFixedBill)
}

type FixedBillCreateRequest struct {
	UserID uint            `json:"user_id"`
	Name   string          `json:"nome"`
	Amount decimal.Decimal `json:"valor"`
	DueDay int             `json:"dia_vencimento"`
	Active *bool           `json:"ativa"`
}

type FixedBillUpdateRequest struct {
	Name   *string          `json:"nome"`
	Amount *decimal.Decimal `json:"valor"`
	DueDay *int             `json:"dia_vencimento"`
	Active *bool            `json:"ativa"`
}

// CreateFixedBill creates a new fixed bill. New bills are active unless
// the request says otherwise.
func CreateFixedBill(c *gin.Context) {
	var request FixedBillCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.UserID == 0 || request.Name == "" || request.DueDay == 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrMissingFields.Error()})
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	bill := models.FixedBill{
		UserID: request.UserID,
		Name:   request.Name,
		Amount: request.Amount,
		DueDay: request.DueDay,
		Active: active,
	}

	if err := models.DB.Create(&bill).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Conta fixa criada com sucesso",
		"conta_fixa": bill,
	})
}

// GetFixedBills lists the user's fixed bills, newest first.
func GetFixedBills(c *gin.Context) {
	user, err := queryUser(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	bills := make([]models.FixedBill, 0)
	err = models.DB.Where(&models.FixedBill{UserID: user.ID}).Order("id DESC").Find(&bills).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, bills)
}

// UpdateFixedBill partially updates a fixed bill.
func UpdateFixedBill(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var bill models.FixedBill
	if err := models.DB.First(&bill, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var request FixedBillUpdateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Name != nil {
		bill.Name = *request.Name
	}
	if request.Amount != nil {
		bill.Amount = *request.Amount
	}
	if request.DueDay != nil {
		bill.DueDay = *request.DueDay
	}
	if request.Active != nil {
		bill.Active = *request.Active
	}

	if err := models.DB.Save(&bill).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Conta fixa alterada com sucesso",
		"conta_fixa": bill,
	})
}

// DeleteFixedBill deletes a fixed bill.
func DeleteFixedBill(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var bill models.FixedBill
	if err := models.DB.First(&bill, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&bill).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conta fixa deletada com sucesso"})
}
