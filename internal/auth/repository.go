package auth

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *StaffAccount) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByEmail(email string) (*StaffAccount, error) {
	var a StaffAccount
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
