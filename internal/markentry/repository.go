package markentry

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *MarkEntry) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindAll() ([]MarkEntry, error) {
	var list []MarkEntry
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) FindByStudent(studentID uint) ([]MarkEntry, error) {
	var list []MarkEntry
	err := r.DB.Where("student_id = ?", studentID).Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*MarkEntry, error) {
	var m MarkEntry
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Update(m *MarkEntry) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(m *MarkEntry) error {
	return r.DB.Delete(m).Error
}
