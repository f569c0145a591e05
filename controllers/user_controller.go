package controllers

import (
	"garment-flow/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	repo *repositories.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{repo: repositories.NewUserRepository(db)}
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := c.repo.GetAll()
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(users)
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	user, err := c.repo.GetByID(id)
	if err != nil {
		return sendError(ctx, err)
	}
	if user == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	return ctx.JSON(user)
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput struct {
		Username   string  `json:"username" validate:"required,min=3"`
		Email      *string `json:"email" validate:"omitempty,email"`
		Password   string  `json:"password" validate:"required,min=6"`
		Role       string  `json:"role"`
		Department string  `json:"department"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to hash password"})
	}

	user, err := c.repo.Create(repositories.InsertUser{
		Username:   userInput.Username,
		Email:      userInput.Email,
		Password:   string(hashed),
		Role:       userInput.Role,
		Department: userInput.Department,
	})
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	var input repositories.UpdateUser
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := c.repo.Update(id, input)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(user)
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	if err := c.repo.Delete(id); err != nil {
		return sendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
