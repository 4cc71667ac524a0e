package dto

import "github.com/swapnilk/acadesk/internal/app/models"

// CreateUserRequest represents user account creation data
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.RoleType `json:"role" binding:"required,oneof=hod coordinator teacher"`
}

// UpdateUserRequest carries optional fields for a partial update.
// Password changes are deliberately not supported here.
type UpdateUserRequest struct {
	Name  *string          `json:"name,omitempty"`
	Email *string          `json:"email,omitempty"`
	Role  *models.RoleType `json:"role,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateUserRequest) ApplyTo(user *models.User) {
	if r.Name != nil {
		user.Name = *r.Name
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
	if r.Role != nil {
		user.Role = *r.Role
	}
}
