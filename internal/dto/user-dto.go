package dto

import (
	"github.com/aarondl/null/v8"
)

type UserDTO struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	Permissions        []string `json:"permissions"`
	IsActive           bool     `json:"isActive"`
	LoginAttempts      int      `json:"loginAttempts"`
	NombreInmobiliaria string   `json:"nombreInmobiliaria,omitempty"`
	Nit                string   `json:"nit,omitempty"`
	CodigoInmobiliaria string   `json:"codigoInmobiliaria,omitempty"`
	CreatedAt          string   `json:"createdAt"`
}

// CreateUserDTO is the operator-side account creation payload. Unlike the
// public register form it may carry a role; the route is gated by
// users:manage.
type CreateUserDTO struct {
	Name               string `json:"name" validate:"required,min=3"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Role               string `json:"role" validate:"required,oneof=admin affi inmobiliaria"`
	Nit                string `json:"nit" validate:"omitempty"`
	CodigoInmobiliaria string `json:"codigoInmobiliaria" validate:"omitempty"`
}

type UpdateUserDTO struct {
	Name               null.String `json:"name"`
	Email              null.String `json:"email" validate:"omitempty"`
	NombreInmobiliaria null.String `json:"nombreInmobiliaria"`
	Nit                null.String `json:"nit"`
	CodigoInmobiliaria null.String `json:"codigoInmobiliaria"`
}

type ChangeRoleDTO struct {
	Role string `json:"role" validate:"required,oneof=admin affi inmobiliaria"`
}

type UpdatePermissionsDTO struct {
	Permissions []string `json:"permissions" validate:"required"`
}
