package academicmonth

import "gorm.io/gorm"

// AcademicMonth is a fixed reference row, one per calendar month. Payments
// select a set of them and snapshot the names into detail rows.
type AcademicMonth struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;not null" json:"name"`
}

var names = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Seed inserts the twelve month rows if they are not present yet.
func Seed(db *gorm.DB) error {
	for i, name := range names {
		month := AcademicMonth{ID: uint(i + 1), Name: name}
		if err := db.FirstOrCreate(&month, AcademicMonth{ID: month.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
