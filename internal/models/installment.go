package models

import (
	"strings"

	"github.com/financas-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InstallmentPlan represents a purchase split into equal payments over a
// fixed number of months (parcelamento).
type InstallmentPlan struct {
	Model
	UserID            uint            `json:"-"`
	User              User            `json:"-"`
	Description       string          `json:"descricao"`
	TotalAmount       decimal.Decimal `json:"valor_total" gorm:"type:DECIMAL(20,8)"`
	TotalInstallments int             `json:"parcelas_totais"`
	PaidInstallments  int             `json:"parcelas_pagas"`
	StartDate         types.Date      `json:"data_inicio"`
	Active            bool            `json:"ativo"`
}

func (InstallmentPlan) TableName() string {
	return "parcelamentos"
}

func (p *InstallmentPlan) BeforeSave(_ *gorm.DB) error {
	p.Description = strings.TrimSpace(p.Description)

	if p.TotalAmount.IsNegative() {
		return ErrAmountInvalid
	}

	if p.TotalInstallments < 1 {
		return ErrInstallmentCountInvalid
	}

	if p.PaidInstallments < 0 || p.PaidInstallments > p.TotalInstallments {
		return ErrInstallmentsPaidInvalid
	}

	if p.StartDate.IsZero() {
		p.StartDate = types.Today()
	}

	return nil
}

// PerInstallment returns the amount of a single installment.
// The plan must have at least one installment, which BeforeSave enforces.
func (p InstallmentPlan) PerInstallment() decimal.Decimal {
	return p.TotalAmount.Div(decimal.NewFromInt(int64(p.TotalInstallments)))
}

// Remaining returns the open liability of the plan, the per-installment
// amount times the number of unpaid installments.
func (p InstallmentPlan) Remaining() decimal.Decimal {
	unpaid := decimal.NewFromInt(int64(p.TotalInstallments - p.PaidInstallments))
	return p.PerInstallment().Mul(unpaid)
}
