package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceHistory is the archived financial summary of one month for one
// user. There is at most one entry per user and month.
type InvoiceHistory struct {
	Model
	UserID           uint            `json:"-" gorm:"uniqueIndex:uq_usuario_mes_ano"`
	User             User            `json:"-"`
	Year             int             `json:"ano" gorm:"column:ano;uniqueIndex:uq_usuario_mes_ano"`
	Month            int             `json:"mes" gorm:"column:mes;uniqueIndex:uq_usuario_mes_ano"`
	ExpenseTotal     decimal.Decimal `json:"total_gastos_registro" gorm:"type:DECIMAL(20,8)"`
	FixedBillTotal   decimal.Decimal `json:"total_contas_fixas" gorm:"type:DECIMAL(20,8)"`
	InstallmentTotal decimal.Decimal `json:"total_parcelamentos" gorm:"type:DECIMAL(20,8)"`
	FinalBalance     decimal.Decimal `json:"saldo_final" gorm:"type:DECIMAL(20,8)"`
}

func (InvoiceHistory) TableName() string {
	return "historico_faturas"
}

func (h *InvoiceHistory) BeforeSave(_ *gorm.DB) error {
	if h.Month < 1 || h.Month > 12 {
		return ErrMonthInvalid
	}

	return nil
}
