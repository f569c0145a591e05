package controllers

import (
	"time"

	"garment-flow/config"
	"garment-flow/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{users: repositories.NewUserRepository(db)}
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var input struct {
		Username string  `json:"username" validate:"required,min=3"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Password string  `json:"password" validate:"required,min=6"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to hash password"})
	}

	user, err := c.users.Create(repositories.InsertUser{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
	})
	if err != nil {
		return sendError(ctx, err)
	}

	token, err := signToken(user.ID, user.Role)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to sign token"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if input.Username == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password are required"})
	}

	user, err := c.users.GetByUsername(input.Username)
	if err != nil {
		return sendError(ctx, err)
	}
	if user == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	if err := c.users.TouchLastLogin(user.ID); err != nil {
		return sendError(ctx, err)
	}

	token, err := signToken(user.ID, user.Role)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to sign token"})
	}

	return ctx.JSON(fiber.Map{"token": token, "user": user})
}

func signToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"exp":    time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}
