package payment

import (
	"time"

	"github.com/SchoolHub/api-school/internal/academicmonth"
	"github.com/shopspring/decimal"
)

// Payment is one posted fee payment for a student. The monetary fields obey
//
//	TotalFeeAmount  = courseFee total × number of selected months
//	TotalAmount     = TotalFeeAmount − TotalFeeAmount×Waiver/100 + PreviousDue
//	AmountRemaining = TotalAmount − AmountPaid
//
// with PreviousDue taken from the student's stored due balance, never from
// the request.
type Payment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	StudentID       uint            `gorm:"not null;index" json:"studentId"`
	StudentName     string          `gorm:"size:255" json:"studentName"`
	CourseFeeID     uint            `gorm:"not null;index" json:"courseFeeId"`
	TotalFeeAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalFeeAmount"`
	Waiver          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"waiver"`
	PreviousDue     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"previousDue"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amountPaid"`
	AmountRemaining decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amountRemaining"`
	PaymentDate     time.Time       `json:"paymentDate"`

	Details []PaymentDetail `gorm:"foreignKey:PaymentID" json:"paymentDetails"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentDetail is the denormalized fan-out row: one per selected academic
// month, snapshotting the month name and per-month amount at write time.
type PaymentDetail struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	PaymentID uint            `gorm:"not null;index" json:"paymentId"`
	MonthName string          `gorm:"size:20;not null" json:"monthName"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
}

// ExpandDetails emits one detail row per selected month. monthlyAmount is
// the course fee total, charged once per month.
func ExpandDetails(paymentID uint, monthlyAmount decimal.Decimal, months []academicmonth.AcademicMonth) []PaymentDetail {
	details := make([]PaymentDetail, 0, len(months))
	for _, m := range months {
		details = append(details, PaymentDetail{
			PaymentID: paymentID,
			MonthName: m.Name,
			Amount:    monthlyAmount,
		})
	}
	return details
}
