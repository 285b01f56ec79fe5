// Package finance implements the monthly aggregation rules that turn a
// user's raw records into the dashboard figures. All functions are pure;
// they operate on snapshots of already-persisted records and have no side
// effects. Amounts stay in exact decimal arithmetic; rounding for display
// is the caller's job (see DisplayPercent and the money package).
package finance

import (
	"time"

	"github.com/financas-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FixedBillTotal returns the sum of all active fixed bills.
// Inactive bills contribute zero.
func FixedBillTotal(bills []models.FixedBill) decimal.Decimal {
	total := decimal.Zero
	for _, bill := range bills {
		if bill.Active {
			total = total.Add(bill.Amount)
		}
	}

	return total
}

// MonthExpenseTotal returns the sum and count of the expenses whose date
// falls into the given month of the given year.
func MonthExpenseTotal(expenses []models.Expense, year int, month time.Month) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0

	for _, expense := range expenses {
		if expense.Date.InMonth(year, month) {
			total = total.Add(expense.Amount)
			count++
		}
	}

	return total, count
}

// CategoryTotals returns the per-category expense totals for the given
// month. Every category of the closed set is present in the result, with
// zero for categories without any expenses, as the presentation layer
// always renders the full category list.
func CategoryTotals(expenses []models.Expense, year int, month time.Month) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal, len(models.Categories()))
	for _, category := range models.Categories() {
		totals[category] = decimal.Zero
	}

	for _, expense := range expenses {
		if expense.Date.InMonth(year, month) {
			totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
		}
	}

	return totals
}

// CategoryPercentages returns each category's share of the grand total as
// a percentage. When the grand total is zero, every percentage is zero.
// The returned values are unrounded; round with DisplayPercent at the
// presentation boundary.
func CategoryPercentages(totals map[models.Category]decimal.Decimal, grandTotal decimal.Decimal) map[models.Category]decimal.Decimal {
	percentages := make(map[models.Category]decimal.Decimal, len(totals))

	for category, total := range totals {
		if grandTotal.IsPositive() {
			percentages[category] = total.Mul(hundred).Div(grandTotal)
		} else {
			percentages[category] = decimal.Zero
		}
	}

	return percentages
}

// CommittedTotal returns the total money obligated or spent in the month,
// the sum of the fixed bill total and the monthly expense total.
func CommittedTotal(fixedTotal, monthTotal decimal.Decimal) decimal.Decimal {
	return fixedTotal.Add(monthTotal)
}

// AvailableBalance returns the salary minus the committed total. The
// result may be negative when the user overspends and is reported as-is,
// never clamped.
func AvailableBalance(salary, committed decimal.Decimal) decimal.Decimal {
	return salary.Sub(committed)
}

// CommittedPercent returns the committed total as a percentage of the
// salary, or zero when the salary is not positive. The returned value is
// unrounded; round with DisplayPercent at the presentation boundary.
func CommittedPercent(committed, salary decimal.Decimal) decimal.Decimal {
	if !salary.IsPositive() {
		return decimal.Zero
	}

	return committed.Mul(hundred).Div(salary)
}

// YearlySeries returns the total expense amount of every month of the
// given year, January first. Months without expenses yield zero.
func YearlySeries(expenses []models.Expense, year int) []decimal.Decimal {
	series := make([]decimal.Decimal, 12)
	for i := range series {
		series[i] = decimal.Zero
	}

	for _, expense := range expenses {
		if expense.Date.InYear(year) {
			i := int(expense.Date.Month()) - 1
			series[i] = series[i].Add(expense.Amount)
		}
	}

	return series
}

// SeriesMax returns the maximum of the series and 1, the scaling divisor
// for the bar visualization. Including 1 guarantees there is no division
// by zero even when every month is empty.
func SeriesMax(series []decimal.Decimal) decimal.Decimal {
	max := decimal.NewFromInt(1)
	for _, value := range series {
		if value.GreaterThan(max) {
			max = value
		}
	}

	return max
}

// InstallmentRemainingTotal returns the open liability over all active
// installment plans: per-installment amount times unpaid installments,
// summed. Inactive plans are excluded; the dashboard reports the count of
// active plans next to this total and the upstream fixed-bill sum applies
// the same active-only policy.
//
// Plans that would divide by zero or that report more paid than total
// installments are rejected with a validation error instead of producing
// silent garbage.
func InstallmentRemainingTotal(plans []models.InstallmentPlan) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, plan := range plans {
		if !plan.Active {
			continue
		}

		if plan.TotalInstallments < 1 {
			return decimal.Zero, models.ErrInstallmentCountInvalid
		}

		if plan.PaidInstallments < 0 || plan.PaidInstallments > plan.TotalInstallments {
			return decimal.Zero, models.ErrInstallmentsPaidInvalid
		}

		total = total.Add(plan.Remaining())
	}

	return total, nil
}

// ActiveInstallmentCount returns the number of active installment plans.
func ActiveInstallmentCount(plans []models.InstallmentPlan) int {
	count := 0
	for _, plan := range plans {
		if plan.Active {
			count++
		}
	}

	return count
}

// DisplayPercent rounds a percentage to one decimal place for display.
// Percentages rounded independently are not guaranteed to sum to exactly
// 100; that is accepted display behavior.
func DisplayPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Round(1)
}
