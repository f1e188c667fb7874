package controllers

import (
	"errors"
	"strconv"

	"courseportal/backend/config"
	"courseportal/backend/middleware"
	"courseportal/backend/models"
	"courseportal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEnrollmentsController(db *gorm.DB, cfg *config.Config) *EnrollmentsController {
	return &EnrollmentsController{DB: db, Cfg: cfg}
}

// Enroll creates a pending enrollment for the caller in the given course.
// The (student_id, course_id) unique index decides duplicates; the lookup
// before the insert only makes the common case cheap to report.
func (ec *EnrollmentsController) Enroll(c *fiber.Ctx) error {
	var input struct {
		CourseID uint `json:"courseId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	studentID := middleware.UserID(c)

	var course models.Course
	if err := ec.DB.First(&course, input.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "Course not found!")
		}
		return utils.ServerError(c)
	}

	var existing models.Enrollment
	err := ec.DB.Where("student_id = ? AND course_id = ?", studentID, input.CourseID).
		First(&existing).Error
	if err == nil {
		return utils.Message(c, fiber.StatusBadRequest, "Already enrolled in this course!")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ServerError(c)
	}

	enrollment := models.Enrollment{
		StudentID: studentID,
		CourseID:  input.CourseID,
		Status:    models.StatusPending,
	}

	if err := ec.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Message(c, fiber.StatusBadRequest, "Already enrolled in this course!")
		}
		return utils.ServerError(c)
	}

	return utils.Message(c, fiber.StatusCreated, "Enrolled successfully!")
}

// GetEnrollments lists enrollments from the caller's side of the relation.
// Students get their own rows with course and teacher names. Teachers must
// name one of their courses and get that course's roster with student names.
func (ec *EnrollmentsController) GetEnrollments(c *fiber.Ctx) error {
	switch middleware.UserRole(c) {
	case models.RoleStudent:
		return ec.studentEnrollments(c)
	case models.RoleTeacher:
		return ec.teacherEnrollments(c)
	default:
		return c.JSON([]fiber.Map{})
	}
}

func (ec *EnrollmentsController) studentEnrollments(c *fiber.Ctx) error {
	var rows []struct {
		models.Enrollment
		CourseName  string
		Description string
		TeacherName string
	}

	err := ec.DB.Model(&models.Enrollment{}).
		Select("enrollments.*, courses.name AS course_name, courses.description, users.username AS teacher_name").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Joins("JOIN users ON users.id = courses.teacher_id").
		Where("enrollments.student_id = ?", middleware.UserID(c)).
		Scan(&rows).Error
	if err != nil {
		return utils.ServerError(c)
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, fiber.Map{
			"id":           row.ID,
			"course_id":    row.CourseID,
			"course_name":  row.CourseName,
			"description":  row.Description,
			"teacher_name": row.TeacherName,
			"status":       row.Status,
		})
	}

	return c.JSON(result)
}

func (ec *EnrollmentsController) teacherEnrollments(c *fiber.Ctx) error {
	courseID := c.Query("courseId")
	if courseID == "" {
		return utils.Message(c, fiber.StatusBadRequest, "Course ID is required!")
	}

	var course models.Course
	err := ec.DB.Where("id = ? AND teacher_id = ?", courseID, middleware.UserID(c)).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusForbidden, "Not authorized to access this course!")
		}
		return utils.ServerError(c)
	}

	var rows []struct {
		models.Enrollment
		StudentName string
	}

	err = ec.DB.Model(&models.Enrollment{}).
		Select("enrollments.*, users.username AS student_name").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("enrollments.course_id = ?", course.ID).
		Scan(&rows).Error
	if err != nil {
		return utils.ServerError(c)
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, fiber.Map{
			"id":           row.ID,
			"student_id":   row.StudentID,
			"student_name": row.StudentName,
			"status":       row.Status,
		})
	}

	return c.JSON(result)
}

// UpdateStatus lets the owning course's teacher grade an enrollment. Only
// passed and failed are accepted as grades.
func (ec *EnrollmentsController) UpdateStatus(c *fiber.Ctx) error {
	enrollmentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Status != models.StatusPassed && input.Status != models.StatusFailed {
		return utils.Message(c, fiber.StatusBadRequest, "Invalid status value!")
	}

	var enrollment models.Enrollment
	if err := ec.DB.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "Enrollment not found!")
		}
		return utils.ServerError(c)
	}

	var course models.Course
	if err := ec.DB.First(&course, enrollment.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "Enrollment not found!")
		}
		return utils.ServerError(c)
	}

	if course.TeacherID != middleware.UserID(c) {
		return utils.Message(c, fiber.StatusForbidden, "Not authorized to update this enrollment!")
	}

	if err := ec.DB.Model(&enrollment).Update("status", input.Status).Error; err != nil {
		return utils.ServerError(c)
	}

	return utils.Message(c, fiber.StatusOK, "Enrollment status updated successfully!")
}
