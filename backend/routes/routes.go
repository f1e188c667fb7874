package routes

import (
	"courseportal/backend/config"
	"courseportal/backend/controllers"
	"courseportal/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	api := app.Group("/api")

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	teacherMiddleware := middleware.TeacherMiddleware()

	// User routes
	userController := controllers.NewUserController(db, cfg)
	api.Get("/user", authMiddleware, userController.GetProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	api.Post("/courses", authMiddleware, teacherMiddleware, coursesController.CreateCourse)
	api.Get("/courses", authMiddleware, coursesController.GetCourses)
	api.Get("/courses/:id", authMiddleware, coursesController.GetCourse)

	// Enrollment routes
	enrollmentsController := controllers.NewEnrollmentsController(db, cfg)
	api.Post("/enroll", authMiddleware, enrollmentsController.Enroll)
	api.Get("/enrollments", authMiddleware, enrollmentsController.GetEnrollments)
	api.Put("/grade/:id", authMiddleware, teacherMiddleware, enrollmentsController.UpdateStatus)
}
