package payment

import (
	"testing"

	"github.com/SchoolHub/api-school/internal/academicmonth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDetailsOneRowPerMonth(t *testing.T) {
	months := []academicmonth.AcademicMonth{
		{ID: 1, Name: "January"},
		{ID: 2, Name: "February"},
	}
	details := ExpandDetails(9, dec("1000"), months)

	require.Len(t, details, 2)
	for i, d := range details {
		assert.Equal(t, uint(9), d.PaymentID)
		assert.Equal(t, months[i].Name, d.MonthName)
		assert.True(t, d.Amount.Equal(dec("1000")))
	}
}

func TestExpandDetailsEmptySelection(t *testing.T) {
	assert.Empty(t, ExpandDetails(1, dec("1000"), nil))
}
