package duebalance

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindAll() ([]DueBalance, error) {
	var list []DueBalance
	err := r.DB.Order("student_id").Find(&list).Error
	return list, err
}

func (r *Repository) FindByStudent(studentID uint) (*DueBalance, error) {
	var b DueBalance
	if err := r.DB.Where("student_id = ?", studentID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
