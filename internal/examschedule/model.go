package examschedule

import "time"

// ExamType classifies a schedule (term exam, model test, ...).
type ExamType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// ExamSubject is one examinable subject. A subject belongs to at most one
// schedule at a time; scheduling reassigns the back-reference.
type ExamSubject struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	SubjectName    string     `gorm:"size:100;not null" json:"subjectName"`
	SubjectCode    string     `gorm:"size:20;not null;uniqueIndex" json:"subjectCode"`
	FullMarks      int        `json:"fullMarks"`
	PassMarks      int        `json:"passMarks"`
	ExamDate       *time.Time `json:"examDate,omitempty"`
	ExamScheduleID *uint      `gorm:"index" json:"examScheduleId,omitempty"`
}

// ExamSchedule groups exam subjects under an exam type.
type ExamSchedule struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Name       string        `gorm:"size:255;not null" json:"name"`
	ExamTypeID uint          `gorm:"not null;index" json:"examTypeId"`
	ExamType   *ExamType     `gorm:"foreignKey:ExamTypeID" json:"examType,omitempty"`
	Subjects   []ExamSubject `gorm:"foreignKey:ExamScheduleID" json:"subjects"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
