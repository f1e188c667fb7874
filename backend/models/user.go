package models

import "gorm.io/gorm"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash, never sent to clients
	Role     string `gorm:"not null"` // student, teacher
	Email    string
}
