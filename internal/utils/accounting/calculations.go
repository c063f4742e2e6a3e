package accounting

import (
	"fmt"
	"time"

	"github.com/kessan-app/kessan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places ledger amounts carry.
// Overridable through configuration at boot; every rounding rule in the
// engine goes through RoundHalfUp with this precision.
var CurrencyPrecision int32 = 2

// RoundHalfUp rounds d to the ledger's currency precision using round-half-up.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPrecision)
}

// CalculateSignedAmount applies the correct sign to a line amount based on the
// account type and line side.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount
	isDebit := line.Side == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	return signedAmount, nil
}

// SumSides returns the debit and credit totals of a set of lines.
func SumSides(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		if line.Side == domain.Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	return debits, credits
}

// WholeMonthsBetween counts the whole calendar months an asset has been in use
// from the acquisition date through the end of a period (inclusive). Partial
// months do not count: an asset acquired on the 15th earns its first month on
// the 14th of the following month.
func WholeMonthsBetween(from time.Time, periodEnd time.Time) int {
	// Measure against the day after the period end so that an asset acquired
	// on the first of a month has earned that month by the period's last day.
	to := periodEnd.AddDate(0, 0, 1)
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// ProRateByMonths scales an annual amount by months/12, rounding half-up to
// the currency precision.
func ProRateByMonths(annual decimal.Decimal, months int) decimal.Decimal {
	return RoundHalfUp(annual.Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(12)))
}
