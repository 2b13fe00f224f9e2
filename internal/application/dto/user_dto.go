package dto

import "time"

// CreateUserRequest alta de usuario por un ADMIN.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Document  string `json:"document"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// UpdateUserRequest actualización parcial de usuario + persona.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Document  *string `json:"document"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

// UpdateUserStatusRequest activa/desactiva una cuenta.
type UpdateUserStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// UserDetailResponse usuario con su persona y rol, para el listado de
// administración.
type UserDetailResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Document  string     `json:"document"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
