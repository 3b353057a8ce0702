package duebalance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueBalance is a student's single outstanding-amount record. It is upserted
// by every payment write (last reconciliation wins, no history) and never
// deleted directly.
type DueBalance struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	StudentID  uint            `gorm:"not null;uniqueIndex" json:"studentId"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"dueBalanceAmount"`
	LastUpdate time.Time       `json:"lastUpdate"`
}
