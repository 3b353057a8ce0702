package student

import "time"

// Student is an enrolled pupil. Payments and mark entries reference it.
type Student struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AdmissionNo  string    `gorm:"size:50;not null;uniqueIndex" json:"admissionNo"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Standard     string    `gorm:"size:50" json:"standard"`
	Section      string    `gorm:"size:50" json:"section"`
	GuardianName string    `gorm:"size:255" json:"guardianName"`
	Phone        string    `gorm:"size:30" json:"phone"`
	Email        string    `gorm:"size:255" json:"email"`
	EnrolledAt   time.Time `json:"enrolledAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
