package repositories

import (
	"errors"
	"log"
	"time"

	"garment-flow/apperr"
	"garment-flow/models"
	"garment-flow/validation"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

// InsertUser carries an already-hashed password; hashing is the auth
// controller's job.
type InsertUser struct {
	Username   string  `json:"username"`
	Email      *string `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Status     string  `json:"status"`
}

type UpdateUser struct {
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Status     *string `json:"status"`
}

func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching users")
	}
	return users, nil
}

func (r *UserRepository) GetByID(id int) (*models.User, error) {
	if id <= 0 {
		return nil, apperr.Validationf("User ID must be a positive number")
	}
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching user")
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	if username == "" {
		return nil, apperr.Validationf("Username is required")
	}
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching user by username")
	}
	return &user, nil
}

func (r *UserRepository) Create(input InsertUser) (*models.User, error) {
	username, err := validation.RequireString(input.Username, "Username", 1)
	if err != nil {
		return nil, err
	}
	if _, err := validation.RequireString(input.Password, "Password", 1); err != nil {
		return nil, err
	}

	user := models.User{
		Username:   username,
		Email:      input.Email,
		Password:   input.Password,
		Role:       defaultString(input.Role, "user"),
		Department: input.Department,
		Status:     defaultString(input.Status, "active"),
		CreatedAt:  time.Now(),
	}

	log.Printf("creating user %s", user.Username)
	if err := r.db.Create(&user).Error; err != nil {
		return nil, apperr.FromDB(err, "creating user")
	}
	return &user, nil
}

// Update applies only the supplied fields and returns the stored record.
func (r *UserRepository) Update(id int, input UpdateUser) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("User with ID %d not found", id)
	}

	updates := map[string]interface{}{}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.Department != nil {
		updates["department"] = *input.Department
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if len(updates) > 0 {
		if err := r.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperr.FromDB(err, "updating user")
		}
	}
	return user, nil
}

// TouchLastLogin stamps a successful login.
func (r *UserRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", &now).Error; err != nil {
		return apperr.FromDB(err, "updating last login")
	}
	return nil
}

func (r *UserRepository) Delete(id int) error {
	if id <= 0 {
		return apperr.Validationf("User ID must be a positive number")
	}
	if err := r.db.Delete(&models.User{}, id).Error; err != nil {
		return apperr.FromDB(err, "deleting user")
	}
	return nil
}
