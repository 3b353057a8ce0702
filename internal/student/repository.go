package student

import "gorm.io/gorm"

// Repository encapsulates database access for students.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(s *Student) error {
	return r.DB.Create(s).Error
}

func (r *Repository) FindAll() ([]Student, error) {
	var list []Student
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Student, error) {
	var s Student
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Update(s *Student) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Delete(s *Student) error {
	return r.DB.Delete(s).Error
}
