package controllers

import (
	"net/http"

	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/financas-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterInstallmentRoutes registers the routes for installment plans
// with the RouterGroup that is passed.
func RegisterInstallmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/adicionar", httputil.OptionsPost)
	r.POST("/adicionar", CreateInstallment)

	r.OPTIONS("/meusparcelamentos", httputil.OptionsGet)
	r.GET("/meusparcelamentos", GetInstallments)

	r.OPTIONS("/alterar/:id", httputil.OptionsPutDelete)
	r.PUT("/alterar/:id", UpdateInstallment)

	r.OPTIONS("/deletar/:id", httputil.OptionsPutDelete)
	r.DELETE("/deletar/:id", DeleteInstallment)
}

type InstallmentCreateRequest struct {
	UserID            uint             `json:"user_id"`
	Description       string           `json:"descricao"`
	TotalAmount       *decimal.Decimal `json:"valor_total"`
	TotalInstallments int              `json:"parcelas_totais"`
	PaidInstallments  int              `json:"parcelas_pagas"`
	StartDate         types.Date       `json:"data_inicio"`
	Active            *bool            `json:"ativo"`
}

type InstallmentUpdateRequest struct {
	Description       *string          `json:"descricao"`
	TotalAmount       *decimal.Decimal `json:"valor_total"`
	TotalInstallments *int             `json:"parcelas_totais"`
	PaidInstallments  *int             `json:"parcelas_pagas"`
	StartDate         *types.Date      `json:"data_inicio"`
	Active            *bool            `json:"ativo"`
}

// InstallmentResponse is an installment plan with its derived amounts.
type InstallmentResponse struct {
	models.InstallmentPlan
	PerInstallment decimal.Decimal `json:"valor_parcela"`
	Remaining      decimal.Decimal `json:"valor_restante"`
}

func newInstallmentResponse(plan models.InstallmentPlan) InstallmentResponse {
	return InstallmentResponse{
		InstallmentPlan: plan,
		PerInstallment:  plan.PerInstallment(),
		Remaining:       plan.Remaining(),
	}
}

// CreateInstallment creates a new installment plan.
func CreateInstallment(c *gin.Context) {
	var request InstallmentCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.UserID == 0 || request.Description == "" || request.TotalAmount == nil || request.TotalInstallments == 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrMissingFields.Error()})
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	plan := models.InstallmentPlan{
		UserID:            request.UserID,
		Description:       request.Description,
		TotalAmount:       *request.TotalAmount,
		TotalInstallments: request.TotalInstallments,
		PaidInstallments:  request.PaidInstallments,
		StartDate:         request.StartDate,
		Active:            active,
	}

	if err := models.DB.Create(&plan).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Parcelamento criado com sucesso",
		"parcelamento": newInstallmentResponse(plan),
	})
}

// GetInstallments lists the user's installment plans, newest first,
// with the derived per-installment and remaining amounts.
func GetInstallments(c *gin.Context) {
	user, err := queryUser(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var plans []models.InstallmentPlan
	err = models.DB.Where(&models.InstallmentPlan{UserID: user.ID}).Order("id DESC").Find(&plans).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	responses := make([]InstallmentResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, newInstallmentResponse(plan))
	}

	c.JSON(http.StatusOK, gin.H{"parcelamentos": responses})
}

// UpdateInstallment partially updates an installment plan.
func UpdateInstallment(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var plan models.InstallmentPlan
	if err := models.DB.First(&plan, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var request InstallmentUpdateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Description != nil {
		plan.Description = *request.Description
	}
	if request.TotalAmount != nil {
		plan.TotalAmount = *request.TotalAmount
	}
	if request.TotalInstallments != nil {
		plan.TotalInstallments = *request.TotalInstallments
	}
	if request.PaidInstallments != nil {
		plan.PaidInstallments = *request.PaidInstallments
	}
	if request.StartDate != nil {
		plan.StartDate = *request.StartDate
	}
	if request.Active != nil {
		plan.Active = *request.Active
	}

	if err := models.DB.Save(&plan).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Parcelamento alterado com sucesso",
		"parcelamento": newInstallmentResponse(plan),
	})
}

// DeleteInstallment deletes an installment plan.
func DeleteInstallment(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var plan models.InstallmentPlan
	if err := models.DB.First(&plan, uri.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&plan).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Parcelamento deletado com sucesso"})
}
