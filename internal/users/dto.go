package users

import (
	"strings"
	"time"

	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    *string        `json:"address,omitempty"`
	Role       enums.UserRole `json:"role"`
	IsVerified bool           `json:"is_verified"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name             string
	Email            string
	PasswordHash     string
	Phone            string
	Address          *string
	Role             enums.UserRole
	VerificationCode *int
}

// UpdateUserDTO carries the optional fields of a partial profile update.
// Nil pointers leave the stored value untouched.
type UpdateUserDTO struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Phone        *string
	Address      *string
	Role         *enums.UserRole
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Every write and lookup goes through this so casing never splits identities.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Address:    u.Address,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = enums.UserRoleCustomer
	}

	return &models.User{
		Name:             c.Name,
		Email:            NormalizeEmail(c.Email),
		PasswordHash:     c.PasswordHash,
		Phone:            c.Phone,
		Address:          c.Address,
		Role:             role,
		IsVerified:       false,
		VerificationCode: c.VerificationCode,
	}
}
