package coursefee

import "github.com/shopspring/decimal"

// SaveCourseFeeRequest is the write payload for POST and PUT.
type SaveCourseFeeRequest struct {
	ID                   uint            `json:"id"`
	CourseName           string          `json:"courseName" validate:"required"`
	TotalCourseFeeAmount decimal.Decimal `json:"totalCourseFeeAmount"`
	FeeStructureIDs      []uint          `json:"feeStructureIds"`
}
