package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavePaymentRequest is the write payload for POST and PUT. PreviousDue is
// accepted for compatibility but discarded; the stored due balance wins.
type SavePaymentRequest struct {
	ID               uint            `json:"id"`
	StudentID        uint            `json:"studentId" validate:"required"`
	CourseFeeID      uint            `json:"courseFeeId" validate:"required"`
	AcademicMonthIDs []uint          `json:"academicMonthIds"`
	Waiver           decimal.Decimal `json:"waiver"`
	PreviousDue      decimal.Decimal `json:"previousDue"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	PaymentDate      *time.Time      `json:"paymentDate"`
}
