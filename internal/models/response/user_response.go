package response

import (
	"time"

	"rw-be-svc/internal/models"
)

// UserResponse is the public view of a user account
type UserResponse struct {
	ID        uint        `json:"id" example:"1"`
	Username  string      `json:"username" example:"budi"`
	Email     *string     `json:"email" example:"budi@example.com"`
	Name      string      `json:"name" example:"Budi Santoso"`
	Role      models.Role `json:"role" swaggertype:"string" example:"warga"`
	RTNumber  *string     `json:"rt_number" example:"01"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewUserResponse converts a user model to its public view
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		RTNumber:  u.RTNumber,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned by registration, login and token verification
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// ImportRowError describes a spreadsheet row that could not be imported
type ImportRowError struct {
	Row     int    `json:"row" example:"4"`
	Message string `json:"message" example:"Email sudah dipakai"`
}

// ImportUsersResponse summarizes a spreadsheet import
type ImportUsersResponse struct {
	Imported int              `json:"imported" example:"10"`
	Skipped  int              `json:"skipped" example:"2"`
	Errors   []ImportRowError `json:"errors"`
}
