package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/financas-app/backend/internal/controllers"
	"github.com/financas-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateInstallment() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	amount := decimal.NewFromInt(1200)
	plan := createTestInstallment(suite.T(), user.ID, controllers.InstallmentCreateRequest{
		Description:       "Notebook",
		TotalAmount:       &amount,
		TotalInstallments: 12,
		PaidInstallments:  4,
	})

	suite.Assert().Equal("Notebook", plan.Description)
	suite.Assert().True(plan.Active)

	// Derived amounts are part of the response
	suite.Assert().True(plan.PerInstallment.Equal(decimal.NewFromInt(100)), "per installment is %s", plan.PerInstallment)
	suite.Assert().True(plan.Remaining.Equal(decimal.NewFromInt(800)), "remaining is %s", plan.Remaining)
}

func (suite *TestSuiteStandard) TestCreateInstallmentErrors() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	amount := decimal.NewFromInt(1200)

	tests := []struct {
		name string
		body controllers.InstallmentCreateRequest
	}{
		{"No description", controllers.InstallmentCreateRequest{UserID: user.ID, TotalAmount: &amount, TotalInstallments: 12}},
		{"No amount", controllers.InstallmentCreateRequest{UserID: user.ID, Description: "Notebook", TotalInstallments: 12}},
		{"No installments", controllers.InstallmentCreateRequest{UserID: user.ID, Description: "Notebook", TotalAmount: &amount}},
		{"Paid exceeds total", controllers.InstallmentCreateRequest{UserID: user.ID, Description: "Notebook", TotalAmount: &amount, TotalInstallments: 10, PaidInstallments: 11}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/parcelamentos/adicionar", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetInstallments() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	first := createTestInstallment(suite.T(), user.ID, controllers.InstallmentCreateRequest{})
	second := createTestInstallment(suite.T(), user.ID, controllers.InstallmentCreateRequest{})

	r := test.Request(suite.T(), http.MethodGet, userURL("/parcelamentos/meusparcelamentos", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Installments []controllers.InstallmentResponse `json:"parcelamentos"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	// Newest first
	suite.Require().Len(response.Installments, 2)
	suite.Assert().Equal(second.ID, response.Installments[0].ID)
	suite.Assert().Equal(first.ID, response.Installments[1].ID)
}

func (suite *TestSuiteStandard) TestUpdateInstallment() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	plan := createTestInstallment(suite.T(), user.ID, controllers.InstallmentCreateRequest{})

	paid := 6
	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/parcelamentos/alterar/%d", plan.ID), controllers.InstallmentUpdateRequest{
		PaidInstallments: &paid,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Installment controllers.InstallmentResponse `json:"parcelamento"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(6, response.Installment.PaidInstallments)
	suite.Assert().True(response.Installment.Remaining.Equal(decimal.NewFromInt(600)), "remaining is %s", response.Installment.Remaining)
}

func (suite *TestSuiteStandard) TestUpdateInstallmentErrors() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	plan := createTestInstallment(suite.T(), user.ID, controllers.InstallmentCreateRequest{})

	paid := 13
	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Unknown plan", "http://example.com/parcelamentos/alterar/4096", controllers.InstallmentUpdateRequest{}, http.StatusNotFound},
		{"Paid exceeds total", fmt.Sprintf("http://example.com/parcelamentos/alterar/%d", plan.ID), controllers.InstallmentUpdateRequest{PaidInstallments: &paid}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteInstallment() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	plan := createTestInstallment(suite.T(), user.ID, controllers.InstallmentCreateRequest{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/parcelamentos/deletar/%d", plan.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/parcelamentos/deletar/%d", plan.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
