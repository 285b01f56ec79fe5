package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FixedBill represents a recurring monthly obligation with a fixed due day.
// Inactive bills are excluded from committed totals but are kept for history.
type FixedBill struct {
	Model
	UserID uint            `json:"-"`
	User   User            `json:"-"`
	Name   string          `json:"nome"`
	Amount decimal.Decimal `json:"valor" gorm:"type:DECIMAL(20,8)"`
	DueDay int             `json:"dia_vencimento"`
	Active bool            `json:"ativa"`
}

func (FixedBill) TableName() string {
	return "contas_fixas"
}

func (b *FixedBill) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.Amount.IsNegative() {
		return ErrAmountInvalid
	}

	if b.DueDay < 1 || b.DueDay > 31 {
		return ErrDueDayInvalid
	}

	return nil
}
