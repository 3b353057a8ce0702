package markentry

import "time"

// Grade letters and pass statuses as recorded on a mark entry.
const (
	PassStatusPassed             = "Passed"
	PassStatusFailed             = "Failed"
	PassStatusUnderConsideration = "UnderConsideration"
	PassStatusWithdrawn          = "Withdrawn"
)

// MarkEntry records one student's score in one subject.
type MarkEntry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StudentID      uint      `gorm:"not null;index" json:"studentId"`
	SubjectName    string    `gorm:"size:100;not null" json:"subjectName"`
	ExamPaperScore int       `json:"examPaperScore"`
	PassMarks      int       `json:"passMarks"`
	ObtainedScore  int       `json:"obtainedScore"`
	Grade          string    `gorm:"size:2" json:"grade"`
	PassStatus     string    `gorm:"size:30" json:"passStatus"`
	Feedback       string    `gorm:"size:500" json:"feedback"`
	EntryDate      time.Time `json:"entryDate"`
}
