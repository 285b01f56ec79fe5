// Package dashboard maps aggregation results onto the dashboard's
// presentation model: a fixed ordered list of summary cards and a
// relative-magnitude bar visualization. It holds no state of its own.
package dashboard

import (
	"fmt"
	"time"

	"github.com/financas-app/backend/internal/finance"
	"github.com/financas-app/backend/internal/models"
	"github.com/financas-app/backend/internal/money"
	"github.com/shopspring/decimal"
)

// Icon identifies the icon rendered on a card or next to a category.
// The set is closed; clients resolve the identifier to their icon asset.
type Icon string

const (
	IconSalary        Icon = "dollar-sign"
	IconCommitted     Icon = "trending-down"
	IconAvailable     Icon = "wallet"
	IconFixedBills    Icon = "receipt"
	IconInstallments  Icon = "credit-card"
	IconFood          Icon = "utensils"
	IconTransport     Icon = "car"
	IconLeisure       Icon = "smile"
	IconHealth        Icon = "heart-pulse"
	IconEducation     Icon = "graduation-cap"
	IconShopping      Icon = "shopping-bag"
	IconSubscriptions Icon = "repeat"
	IconOther         Icon = "circle-ellipsis"
)

// CategoryIcon returns the icon for a spending category. The mapping is
// total over the closed category set.
func CategoryIcon(c models.Category) Icon {
	switch c {
	case models.CategoryFood:
		return IconFood
	case models.CategoryTransport:
		return IconTransport
	case models.CategoryLeisure:
		return IconLeisure
	case models.CategoryHealth:
		return IconHealth
	case models.CategoryEducation:
		return IconEducation
	case models.CategoryShopping:
		return IconShopping
	case models.CategorySubscriptions:
		return IconSubscriptions
	default:
		return IconOther
	}
}

// Theme is an explicit visual configuration passed to consumers, not
// ambient state. Colors are hex strings.
type Theme struct {
	Name       string `json:"nome"`
	Background string `json:"fundo"`
	Card       string `json:"cartao"`
	Text       string `json:"texto"`
	SubText    string `json:"subtexto"`
	Icon       string `json:"icone"`
	Highlight  string `json:"destaque"`
}

var (
	// Light is the default light theme.
	Light = Theme{
		Name:       "light",
		Background: "#f9fafb",
		Card:       "#ffffff",
		Text:       "#111827",
		SubText:    "#6b7280",
		Icon:       "#10b981",
		Highlight:  "#16a34a",
	}

	// Dark is the dark theme.
	Dark = Theme{
		Name:       "dark",
		Background: "#020617",
		Card:       "#020617",
		Text:       "#f9fafb",
		SubText:    "#94a3b8",
		Icon:       "#34d399",
		Highlight:  "#16a34a",
	}
)

// Card is one summary card of the dashboard.
type Card struct {
	Title     string `json:"titulo"`
	Value     string `json:"valor"`
	Subtitle  string `json:"subtitulo,omitempty"`
	Icon      Icon   `json:"icone"`
	Highlight bool   `json:"destaque,omitempty"`
}

// Figures is the aggregation-ready snapshot the cards are derived from.
type Figures struct {
	Salary               decimal.Decimal
	FixedBillTotal       decimal.Decimal
	FixedBillCount       int
	MonthExpenseTotal    decimal.Decimal
	ExpenseCount         int
	InstallmentRemaining decimal.Decimal
	ActiveInstallments   int
}

// Cards derives the fixed ordered list of dashboard summary cards.
func Cards(f Figures) []Card {
	committed := finance.CommittedTotal(f.FixedBillTotal, f.MonthExpenseTotal)
	available := finance.AvailableBalance(f.Salary, committed)
	percent := finance.DisplayPercent(finance.CommittedPercent(committed, f.Salary))

	return []Card{
		{
			Title: "Salário Mensal",
			Value: money.Format(f.Salary),
			Icon:  IconSalary,
		},
		{
			Title:    "Comprometido",
			Value:    money.Format(committed),
			Subtitle: fmt.Sprintf("%s%% do salário", percent),
			Icon:     IconCommitted,
		},
		{
			Title:     "Disponível",
			Value:     money.Format(available),
			Icon:      IconAvailable,
			Highlight: true,
		},
		{
			Title:    "Contas Fixas",
			Value:    money.Format(f.FixedBillTotal),
			Subtitle: fmt.Sprintf("%d contas", f.FixedBillCount),
			Icon:     IconFixedBills,
		},
		{
			Title:    "Parcelamentos",
			Value:    money.Format(f.InstallmentRemaining),
			Subtitle: fmt.Sprintf("%d ativos", f.ActiveInstallments),
			Icon:     IconInstallments,
		},
	}
}

// Bar is one bar of the yearly spending visualization.
type Bar struct {
	Month time.Month      `json:"mes"`
	Value decimal.Decimal `json:"valor"`
	Fill  float64         `json:"preenchimento"`
}

// Bars maps a twelve-month series onto bars whose fill is the value
// relative to the series maximum (at least 1, so an all-empty year
// renders as twelve empty bars instead of dividing by zero).
func Bars(series []decimal.Decimal) []Bar {
	max := finance.SeriesMax(series)

	bars := make([]Bar, 0, len(series))
	for i, value := range series {
		fill, _ := value.Div(max).Float64()
		bars = append(bars, Bar{
			Month: time.Month(i + 1),
			Value: value,
			Fill:  fill,
		})
	}

	return bars
}
