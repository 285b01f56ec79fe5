// Package money renders monetary amounts for display and parses the
// free-form input of monetary form fields.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// maxInputDigits caps the length of the digit buffer that ParseInput
// interprets. Anything beyond it cannot be represented as int64 cents.
const maxInputDigits = 15

// Format renders an amount as a BRL display string, e.g. "R$ 1.234,56".
// Rounding to two decimals happens here and nowhere else.
func Format(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ParseInput interprets free-form keystroke input as a monetary amount.
//
// All non-digit characters are stripped, leading zeros are removed, and
// the remaining digit string is read as an integer amount of cents. The
// amount is re-derived from scratch on every call instead of appending to
// a float, so repeated edits cannot accumulate floating point drift and
// the returned display string always matches a representable amount.
//
// Empty or all-zero input parses to a zero amount and its display string.
func ParseInput(raw string) (decimal.Decimal, string) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := strings.TrimLeft(b.String(), "0")
	if len(digits) > maxInputDigits {
		digits = digits[:maxInputDigits]
	}

	if digits == "" {
		return decimal.Zero, Format(decimal.Zero)
	}

	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Unreachable with the digit cap above, but never panic on input
		return decimal.Zero, Format(decimal.Zero)
	}

	amount := decimal.New(cents, -2)
	return amount, Format(amount)
}
