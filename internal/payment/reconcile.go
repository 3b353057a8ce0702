package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidReference marks a payment pointing at a student or course fee
// that does not exist. The surrounding transaction rolls back.
var ErrInvalidReference = errors.New("invalid reference")

var hundred = decimal.NewFromInt(100)

// Totals holds the derived monetary fields of one reconciled payment.
type Totals struct {
	TotalFeeAmount  decimal.Decimal
	PreviousDue     decimal.Decimal
	TotalAmount     decimal.Decimal
	AmountRemaining decimal.Decimal
}

// ComputeTotals derives a payment's monetary fields in exact decimal
// arithmetic. previousDue must be the student's stored due balance.
func ComputeTotals(courseFeeTotal decimal.Decimal, monthCount int, waiver, previousDue, amountPaid decimal.Decimal) Totals {
	totalFee := courseFeeTotal.Mul(decimal.NewFromInt(int64(monthCount)))
	discount := totalFee.Mul(waiver).Div(hundred)
	total := totalFee.Sub(discount).Add(previousDue)

	return Totals{
		TotalFeeAmount:  totalFee,
		PreviousDue:     previousDue,
		TotalAmount:     total,
		AmountRemaining: total.Sub(amountPaid),
	}
}
