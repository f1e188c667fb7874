package models

import "gorm.io/gorm"

const (
	StatusPending = "pending"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

type Course struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string
	TeacherID   uint `gorm:"index;not null"` // fixed at creation
}

// Enrollment links a student to a course. The composite unique index backs
// the one-row-per-(student, course) invariant so concurrent enrolls cannot
// both slip past the existence check.
type Enrollment struct {
	gorm.Model
	StudentID uint   `gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID  uint   `gorm:"uniqueIndex:idx_student_course;not null"`
	Status    string `gorm:"default:pending"` // pending, passed, failed
}
