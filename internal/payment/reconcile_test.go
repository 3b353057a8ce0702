package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotalsWorkedExample(t *testing.T) {
	// 1000/month over two months, 10% waiver, 500 paid, nothing owed before.
	totals := ComputeTotals(dec("1000"), 2, dec("10"), dec("0"), dec("500"))

	assert.True(t, totals.TotalFeeAmount.Equal(dec("2000")), "TotalFeeAmount = %s", totals.TotalFeeAmount)
	assert.True(t, totals.TotalAmount.Equal(dec("1800")), "TotalAmount = %s", totals.TotalAmount)
	assert.True(t, totals.AmountRemaining.Equal(dec("1300")), "AmountRemaining = %s", totals.AmountRemaining)
}

func TestComputeTotalsCarriesPreviousDue(t *testing.T) {
	first := ComputeTotals(dec("1000"), 2, dec("10"), dec("0"), dec("500"))
	require.True(t, first.AmountRemaining.Equal(dec("1300")))

	// The second payment starts from the balance the first one left behind.
	second := ComputeTotals(dec("1000"), 1, dec("0"), first.AmountRemaining, dec("0"))

	assert.True(t, second.PreviousDue.Equal(dec("1300")))
	assert.True(t, second.TotalAmount.Equal(dec("2300")))
	assert.True(t, second.AmountRemaining.Equal(dec("2300")))
}

func TestComputeTotalsNoMonths(t *testing.T) {
	totals := ComputeTotals(dec("1000"), 0, dec("10"), dec("250"), dec("100"))

	assert.True(t, totals.TotalFeeAmount.IsZero())
	assert.True(t, totals.TotalAmount.Equal(dec("250")))
	assert.True(t, totals.AmountRemaining.Equal(dec("150")))
}

func TestComputeTotalsFractionalWaiver(t *testing.T) {
	totals := ComputeTotals(dec("800"), 1, dec("12.5"), dec("0"), dec("0"))

	assert.Equal(t, "700", totals.TotalAmount.String())
}

func TestComputeTotalsExactDecimals(t *testing.T) {
	// Cent amounts that float64 cannot represent exactly.
	totals := ComputeTotals(dec("0.10"), 3, dec("0"), dec("0.20"), dec("0.30"))

	assert.Equal(t, "0.3", totals.TotalFeeAmount.String())
	assert.Equal(t, "0.5", totals.TotalAmount.String())
	assert.Equal(t, "0.2", totals.AmountRemaining.String())
}

func TestComputeTotalsFullWaiver(t *testing.T) {
	totals := ComputeTotals(dec("1234.56"), 2, dec("100"), dec("0"), dec("0"))

	assert.True(t, totals.TotalAmount.IsZero(), "TotalAmount = %s", totals.TotalAmount)
}
