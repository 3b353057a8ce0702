package coursefee

import (
	"github.com/SchoolHub/api-school/internal/feestructure"
	"gorm.io/gorm"
)

// Repository is the persistence boundary for course fees. Write handlers run
// their whole mutation set through Transaction so parent, detail rows and
// component back-references commit or roll back together.
type Repository interface {
	Transaction(fn func(Repository) error) error

	FindAll() ([]CourseFee, error)
	FindByID(id uint) (*CourseFee, error)
	Create(cf *CourseFee) error
	Save(cf *CourseFee) error
	Delete(cf *CourseFee) error

	FeeStructuresByIDs(ids []uint) ([]feestructure.FeeStructure, error)
	AttachStructures(courseFeeID uint, ids []uint) error
	DetachStructures(courseFeeID uint) error
	ReplaceDetails(courseFeeID uint, details []CourseFeeDetail) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Transaction(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) FindAll() ([]CourseFee, error) {
	var list []CourseFee
	err := r.db.Preload("Details").Order("id").Find(&list).Error
	return list, err
}

func (r *gormRepository) FindByID(id uint) (*CourseFee, error) {
	var cf CourseFee
	err := r.db.Preload("Details").Preload("FeeStructures").First(&cf, id).Error
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

func (r *gormRepository) Create(cf *CourseFee) error {
	return r.db.Omit("FeeStructures", "Details").Create(cf).Error
}

func (r *gormRepository) Save(cf *CourseFee) error {
	return r.db.Omit("FeeStructures", "Details").Save(cf).Error
}

func (r *gormRepository) Delete(cf *CourseFee) error {
	if err := r.db.Where("course_fee_id = ?", cf.ID).Delete(&CourseFeeDetail{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&CourseFee{}, cf.ID).Error
}

func (r *gormRepository) FeeStructuresByIDs(ids []uint) ([]feestructure.FeeStructure, error) {
	var list []feestructure.FeeStructure
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id").Find(&list).Error
	return list, err
}

func (r *gormRepository) AttachStructures(courseFeeID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&feestructure.FeeStructure{}).
		Where("id IN ?", ids).
		Update("course_fee_id", courseFeeID).Error
}

// DetachStructures nulls the back-reference of every component pointing at
// the course fee. Components themselves are never deleted here.
func (r *gormRepository) DetachStructures(courseFeeID uint) error {
	return r.db.Model(&feestructure.FeeStructure{}).
		Where("course_fee_id = ?", courseFeeID).
		Update("course_fee_id", nil).Error
}

func (r *gormRepository) ReplaceDetails(courseFeeID uint, details []CourseFeeDetail) error {
	if err := r.db.Where("course_fee_id = ?", courseFeeID).Delete(&CourseFeeDetail{}).Error; err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}
	return r.db.Create(&details).Error
}
