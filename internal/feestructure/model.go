package feestructure

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStructure is a single named fee component (tuition, lab fee, ...).
// It may be attached to at most one course fee; the back-reference is
// nulled, not cascaded, when that course fee is deleted.
type FeeStructure struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	TypeName    string          `gorm:"size:100;not null" json:"typeName"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"feeAmount"`
	CourseFeeID *uint           `gorm:"index" json:"courseFeeId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
