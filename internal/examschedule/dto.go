package examschedule

// SaveExamScheduleRequest is the write payload for POST and PUT. SubjectIDs
// name existing exam subjects to (re)assign to this schedule.
type SaveExamScheduleRequest struct {
	Name       string `json:"name" validate:"required"`
	ExamTypeID uint   `json:"examTypeId" validate:"required"`
	SubjectIDs []uint `json:"subjectIds"`
}
