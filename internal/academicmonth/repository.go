package academicmonth

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindAll() ([]AcademicMonth, error) {
	var list []AcademicMonth
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

// FindByIDs returns the months matching the given ids; unknown ids are
// silently dropped.
func (r *Repository) FindByIDs(ids []uint) ([]AcademicMonth, error) {
	var list []AcademicMonth
	err := r.DB.Where("id IN ?", ids).Order("id").Find(&list).Error
	return list, err
}
