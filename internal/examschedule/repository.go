package examschedule

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindAll() ([]ExamSchedule, error) {
	var list []ExamSchedule
	err := r.DB.Preload("ExamType").Preload("Subjects").Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*ExamSchedule, error) {
	var es ExamSchedule
	err := r.DB.Preload("ExamType").Preload("Subjects").First(&es, id).Error
	if err != nil {
		return nil, err
	}
	return &es, nil
}

func (r *Repository) Create(es *ExamSchedule) error {
	return r.DB.Omit("ExamType", "Subjects").Create(es).Error
}

func (r *Repository) Save(es *ExamSchedule) error {
	return r.DB.Omit("ExamType", "Subjects").Save(es).Error
}

func (r *Repository) Delete(es *ExamSchedule) error {
	// Subjects survive the schedule; only the assignment goes.
	if err := r.DB.Model(&ExamSubject{}).
		Where("exam_schedule_id = ?", es.ID).
		Update("exam_schedule_id", nil).Error; err != nil {
		return err
	}
	return r.DB.Delete(&ExamSchedule{}, es.ID).Error
}

// AssignSubjects reassigns the listed subjects to the schedule after
// releasing whatever was assigned before (full replace).
func (r *Repository) AssignSubjects(scheduleID uint, subjectIDs []uint) error {
	if err := r.DB.Model(&ExamSubject{}).
		Where("exam_schedule_id = ?", scheduleID).
		Update("exam_schedule_id", nil).Error; err != nil {
		return err
	}
	if len(subjectIDs) == 0 {
		return nil
	}
	return r.DB.Model(&ExamSubject{}).
		Where("id IN ?", subjectIDs).
		Update("exam_schedule_id", scheduleID).Error
}

func (r *Repository) FindAllTypes() ([]ExamType, error) {
	var list []ExamType
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) CreateType(t *ExamType) error {
	return r.DB.Create(t).Error
}

func (r *Repository) FindAllSubjects() ([]ExamSubject, error) {
	var list []ExamSubject
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) CreateSubject(s *ExamSubject) error {
	return r.DB.Create(s).Error
}
