package feestructure

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(fs *FeeStructure) error {
	return r.DB.Create(fs).Error
}

func (r *Repository) FindAll() ([]FeeStructure, error) {
	var list []FeeStructure
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*FeeStructure, error) {
	var fs FeeStructure
	if err := r.DB.First(&fs, id).Error; err != nil {
		return nil, err
	}
	return &fs, nil
}

func (r *Repository) Update(fs *FeeStructure) error {
	return r.DB.Save(fs).Error
}

func (r *Repository) Delete(fs *FeeStructure) error {
	return r.DB.Delete(fs).Error
}
