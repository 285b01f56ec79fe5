package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/financas-app/backend/internal/controllers"
	"github.com/financas-app/backend/internal/models"
	"github.com/financas-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateFixedBill() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	bill := createTestFixedBill(suite.T(), user.ID, controllers.FixedBillCreateRequest{
		Name:   "Aluguel",
		Amount: decimal.NewFromInt(900),
		DueDay: 5,
	})

	suite.Assert().Equal("Aluguel", bill.Name)
	suite.Assert().Equal(5, bill.DueDay)

	// New bills default to active
	suite.Assert().True(bill.Active)
}

func (suite *TestSuiteStandard) TestCreateFixedBillErrors() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	tests := []struct {
		name string
		body controllers.FixedBillCreateRequest
	}{
		{"No user", controllers.FixedBillCreateRequest{Name: "Aluguel", DueDay: 5}},
		{"No name", controllers.FixedBillCreateRequest{UserID: user.ID, DueDay: 5}},
		{"Invalid due day", controllers.FixedBillCreateRequest{UserID: user.ID, Name: "Aluguel", DueDay: 32}},
		{"Negative amount", controllers.FixedBillCreateRequest{UserID: user.ID, Name: "Aluguel", DueDay: 5, Amount: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/contas-fixas/create", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetFixedBills() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	first := createTestFixedBill(suite.T(), user.ID, controllers.FixedBillCreateRequest{Name: "Aluguel", Amount: decimal.NewFromInt(900), DueDay: 5})
	second := createTestFixedBill(suite.T(), user.ID, controllers.FixedBillCreateRequest{Name: "Internet", Amount: decimal.NewFromInt(100), DueDay: 10})

	r := test.Request(suite.T(), http.MethodGet, userURL("/contas-fixas/minhascontas", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var bills []models.FixedBill
	test.DecodeResponse(suite.T(), &r, &bills)

	// Newest first
	suite.Require().Len(bills, 2)
	suite.Assert().Equal(second.ID, bills[0].ID)
	suite.Assert().Equal(first.ID, bills[1].ID)
}

func (suite *TestSuiteStandard) TestGetFixedBillsEmpty() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))

	r := test.Request(suite.T(), http.MethodGet, userURL("/contas-fixas/minhascontas", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestUpdateFixedBill() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	bill := createTestFixedBill(suite.T(), user.ID, controllers.FixedBillCreateRequest{Name: "Aluguel", Amount: decimal.NewFromInt(900), DueDay: 5})

	inactive := false
	amount := decimal.NewFromInt(950)
	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/contas-fixas/alterar/%d", bill.ID), controllers.FixedBillUpdateRequest{
		Amount: &amount,
		Active: &inactive,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		FixedBill models.FixedBill `json:"conta_fixa"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.FixedBill.Amount.Equal(amount))
	suite.Assert().False(response.FixedBill.Active)

	// Unset fields stay untouched
	suite.Assert().Equal("Aluguel", response.FixedBill.Name)
	suite.Assert().Equal(5, response.FixedBill.DueDay)
}

func (suite *TestSuiteStandard) TestUpdateFixedBillErrors() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	bill := createTestFixedBill(suite.T(), user.ID, controllers.FixedBillCreateRequest{Name: "Aluguel", Amount: decimal.NewFromInt(900), DueDay: 5})

	invalidDay := 42
	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Unknown bill", "http://example.com/contas-fixas/alterar/4096", controllers.FixedBillUpdateRequest{}, http.StatusNotFound},
		{"Invalid due day", fmt.Sprintf("http://example.com/contas-fixas/alterar/%d", bill.ID), controllers.FixedBillUpdateRequest{DueDay: &invalidDay}, http.StatusBadRequest},
		{"Empty body", fmt.Sprintf("http://example.com/contas-fixas/alterar/%d", bill.ID), "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteFixedBill() {
	user := createTestUser(suite.T(), decimal.NewFromInt(5000))
	bill := createTestFixedBill(suite.T(), user.ID, controllers.FixedBillCreateRequest{Name: "Aluguel", Amount: decimal.NewFromInt(900), DueDay: 5})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/contas-fixas/deletar/%d", bill.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/contas-fixas/deletar/%d", bill.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrFixedBillNotFound.Error(), response.Error)
}
