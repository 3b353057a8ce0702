package payment

import (
	"errors"
	"time"

	"github.com/SchoolHub/api-school/internal/academicmonth"
	"github.com/SchoolHub/api-school/internal/coursefee"
	"github.com/SchoolHub/api-school/internal/duebalance"
	"github.com/SchoolHub/api-school/internal/student"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the persistence boundary for payments plus the rows a
// reconciliation touches. Transaction hands the callback a Repository bound
// to one database transaction; everything inside commits or rolls back as a
// unit.
type Repository interface {
	Transaction(fn func(Repository) error) error

	FindAll() ([]Payment, error)
	FindByID(id uint) (*Payment, error)
	Create(p *Payment) error
	Save(p *Payment) error
	Delete(p *Payment) error
	ReplaceDetails(paymentID uint, details []PaymentDetail) error

	StudentByID(id uint) (*student.Student, error)
	CourseFeeByID(id uint) (*coursefee.CourseFee, error)
	MonthsByIDs(ids []uint) ([]academicmonth.AcademicMonth, error)

	// DueBalanceForUpdate returns the student's balance row locked for the
	// duration of the transaction, or nil when none exists yet. The lock
	// serializes concurrent payments for the same student.
	DueBalanceForUpdate(studentID uint) (*duebalance.DueBalance, error)
	UpsertDueBalance(studentID uint, b *duebalance.DueBalance) error
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

func (r *gormRepository) FindAll() ([]Payment, error) {
	var list []Payment
	err := r.db.Preload("Details").Order("id").Find(&list).Error
	return list, err
}

func (r *gormRepository) FindByID(id uint) (*Payment, error) {
	var p Payment
	if err := r.db.Preload("Details").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) Create(p *Payment) error {
	return r.db.Omit("Details").Create(p).Error
}

func (r *gormRepository) Save(p *Payment) error {
	return r.db.Omit("Details").Save(p).Error
}

func (r *gormRepository) Delete(p *Payment) error {
	if err := r.db.Where("payment_id = ?", p.ID).Delete(&PaymentDetail{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&Payment{}, p.ID).Error
}

func (r *gormRepository) ReplaceDetails(paymentID uint, details []PaymentDetail) error {
	if err := r.db.Where("payment_id = ?", paymentID).Delete(&PaymentDetail{}).Error; err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}
	return r.db.Create(&details).Error
}

func (r *gormRepository) StudentByID(id uint) (*student.Student, error) {
	var s student.Student
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) CourseFeeByID(id uint) (*coursefee.CourseFee, error) {
	var cf coursefee.CourseFee
	if err := r.db.First(&cf, id).Error; err != nil {
		return nil, err
	}
	return &cf, nil
}

func (r *gormRepository) MonthsByIDs(ids []uint) ([]academicmonth.AcademicMonth, error) {
	var list []academicmonth.AcademicMonth
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id").Find(&list).Error
	return list, err
}

func (r *gormRepository) DueBalanceForUpdate(studentID uint) (*duebalance.DueBalance, error) {
	var b duebalance.DueBalance
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ?", studentID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) UpsertDueBalance(studentID uint, b *duebalance.DueBalance) error {
	b.StudentID = studentID
	b.LastUpdate = time.Now()
	return r.db.Save(b).Error
}
