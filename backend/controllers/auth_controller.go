package controllers

import (
	"errors"

	"courseportal/backend/config"
	"courseportal/backend/models"
	"courseportal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account. The username unique index is the
// source of truth for duplicates; the lookup before the insert only exists
// to give the common case a clean error.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Username == "" || input.Password == "" {
		return utils.Message(c, fiber.StatusBadRequest, "Username and password are required!")
	}

	var existing models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return utils.Message(c, fiber.StatusBadRequest, "Username already exists!")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ServerError(c)
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return utils.ServerError(c)
	}

	user := models.User{
		Username: input.Username,
		Password: hashedPassword,
		Role:     input.Role,
		Email:    input.Email,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Message(c, fiber.StatusBadRequest, "Username already exists!")
		}
		return utils.ServerError(c)
	}

	return utils.Message(c, fiber.StatusCreated, "User registered successfully!")
}

// Login verifies credentials and issues a signed token carrying the user's
// id, username and role.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.Message(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Message(c, fiber.StatusNotFound, "User not found!")
		}
		return utils.ServerError(c)
	}

	if !utils.ComparePassword(input.Password, user.Password) {
		return utils.Message(c, fiber.StatusUnauthorized, "Invalid password!")
	}

	token, err := utils.GenerateJWTToken(&user, ac.Cfg)
	if err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(fiber.Map{
		"id":          user.ID,
		"username":    user.Username,
		"role":        user.Role,
		"accessToken": token,
	})
}
