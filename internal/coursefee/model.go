package coursefee

import (
	"time"

	"github.com/SchoolHub/api-school/internal/feestructure"
	"github.com/shopspring/decimal"
)

// CourseFee is a billable package composed of fee-structure components.
// When components are selected, TotalAmount is the sum of their amounts and
// any client-supplied total is ignored; a course fee saved without components
// keeps the client-supplied total.
type CourseFee struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CourseName  string          `gorm:"size:255;not null" json:"courseName"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalCourseFeeAmount"`

	FeeStructures []feestructure.FeeStructure `gorm:"foreignKey:CourseFeeID" json:"feeStructures,omitempty"`
	Details       []CourseFeeDetail           `gorm:"foreignKey:CourseFeeID" json:"courseFeeDetails"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CourseFeeDetail is a denormalized snapshot of one selected fee component,
// taken at write time. Rows are regenerated wholesale on every update.
type CourseFeeDetail struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CourseFeeID uint            `gorm:"not null;index" json:"courseFeeId"`
	FeeTypeName string          `gorm:"size:100;not null" json:"feeTypeName"`
	FeeAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"feeAmount"`
}

// ExpandDetails emits one snapshot row per selected fee component.
func ExpandDetails(courseFeeID uint, structures []feestructure.FeeStructure) []CourseFeeDetail {
	details := make([]CourseFeeDetail, 0, len(structures))
	for _, fs := range structures {
		details = append(details, CourseFeeDetail{
			CourseFeeID: courseFeeID,
			FeeTypeName: fs.TypeName,
			FeeAmount:   fs.Amount,
		})
	}
	return details
}

// SumAmounts adds up the component amounts in exact decimal arithmetic.
func SumAmounts(structures []feestructure.FeeStructure) decimal.Decimal {
	total := decimal.Zero
	for _, fs := range structures {
		total = total.Add(fs.Amount)
	}
	return total
}
