package controllers

import (
	"errors"

	"courseportal/backend/config"
	"courseportal/backend/middleware"
	"courseportal/backend/models"
	"courseportal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetProfile returns the authenticated user's public fields. The password
// hash stays server-side.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	var user models.User
	if err := uc.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "User not found!")
		}
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"email":    user.Email,
	})
}
