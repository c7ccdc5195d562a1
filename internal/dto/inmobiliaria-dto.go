package dto

import (
	"github.com/aarondl/null/v8"
)

type InmobiliariaDTO struct {
	ID       uint64 `json:"id"`
	Nombre   string `json:"nombre"`
	Nit      string `json:"nit"`
	Codigo   string `json:"codigo"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Ciudad   string `json:"ciudad,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	IsActive bool   `json:"isActive"`
}

type CreateInmobiliariaDTO struct {
	Nombre   string `json:"nombre" validate:"required,min=3"`
	Nit      string `json:"nit" validate:"required"`
	Codigo   string `json:"codigo" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefono string `json:"telefono" validate:"omitempty"`
	Ciudad   string `json:"ciudad" validate:"omitempty"`
	Direccion string `json:"direccion" validate:"omitempty"`
}

type UpdateInmobiliariaDTO struct {
	Nombre   null.String `json:"nombre"`
	Nit      null.String `json:"nit"`
	Codigo   null.String `json:"codigo"`
	Email    null.String `json:"email" validate:"omitempty"`
	Telefono null.String `json:"telefono"`
	Ciudad   null.String `json:"ciudad"`
	Direccion null.String `json:"direccion"`
	IsActive null.Bool   `json:"isActive"`
}

// ImportResultDTO summarizes a spreadsheet bulk load.
type ImportResultDTO struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
