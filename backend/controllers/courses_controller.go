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

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// courseRow is a course joined with its owning teacher's username.
type courseRow struct {
	models.Course
	TeacherName string
}

func (cc *CoursesController) courseQuery() *gorm.DB {
	return cc.DB.Model(&models.Course{}).
		Select("courses.*, users.username AS teacher_name").
		Joins("JOIN users ON users.id = courses.teacher_id")
}

func courseJSON(row courseRow) fiber.Map {
	return fiber.Map{
		"id":           row.ID,
		"name":         row.Name,
		"description":  row.Description,
		"teacher_id":   row.TeacherID,
		"teacher_name": row.TeacherName,
	}
}

// CreateCourse persists a new course owned by the caller. The teacher gate
// runs in middleware, so the caller's role is already known to be teacher.
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" {
		return utils.Message(c, fiber.StatusBadRequest, "Course name is required!")
	}

	course := models.Course{
		Name:        input.Name,
		Description: input.Description,
		TeacherID:   middleware.UserID(c),
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.ServerError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Course created successfully!",
		"courseId": course.ID,
	})
}

// GetCourses lists courses. Teachers see only courses they own, students
// see everything, each course annotated with its teacher's username.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	query := cc.courseQuery()
	if middleware.UserRole(c) == models.RoleTeacher {
		query = query.Where("courses.teacher_id = ?", middleware.UserID(c))
	}

	var rows []courseRow
	if err := query.Scan(&rows).Error; err != nil {
		return utils.ServerError(c)
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, courseJSON(row))
	}

	return c.JSON(result)
}

// GetCourse fetches a single course by id. Any authenticated user may read
// any course.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var row courseRow
	err = cc.courseQuery().Where("courses.id = ?", courseID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "Course not found!")
		}
		return utils.ServerError(c)
	}

	return c.JSON(courseJSON(row))
}
