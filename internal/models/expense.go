package models

import (
	"strings"

	"github.com/financas-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Category is the spending category of a daily expense. The set of
// categories is closed; anything else is a data quality error.
type Category string

const (
	CategoryFood          Category = "Alimentação"
	CategoryTransport     Category = "Transporte"
	CategoryLeisure       Category = "Lazer"
	CategoryHealth        Category = "Saúde"
	CategoryEducation     Category = "Educação"
	CategoryShopping      Category = "Compras"
	CategorySubscriptions Category = "Assinaturas"
	CategoryOther         Category = "Outros"
)

// Categories returns all categories in presentation order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryLeisure,
		CategoryHealth,
		CategoryEducation,
		CategoryShopping,
		CategorySubscriptions,
		CategoryOther,
	}
}

// Valid reports whether the category is a member of the closed set.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// Expense represents a single dated, categorized spending record
// (registro diário). Each expense belongs to exactly one calendar month,
// the month of its date.
type Expense struct {
	Model
	UserID      uint            `json:"-"`
	User        User            `json:"-"`
	Description string          `json:"descricao"`
	Category    Category        `json:"categoria"`
	Amount      decimal.Decimal `json:"valor" gorm:"type:DECIMAL(20,8)"`
	Date        types.Date      `json:"data_registro"`
}

func (Expense) TableName() string {
	return "registros_diarios"
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Amount.IsNegative() {
		return ErrAmountInvalid
	}

	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}

	if e.Date.IsZero() {
		e.Date = types.Today()
	}

	return nil
}
