package entities

import (
	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

type Inmobiliaria struct {
	ID       uint64 `json:"id" db:"id"`
	Nombre   string `json:"nombre" db:"nombre"`
	Nit      string `json:"nit" db:"nit"`
	Codigo   string `json:"codigo" db:"codigo"`
	Email    *string `json:"email,omitempty" db:"email"`
	Telefono *string `json:"telefono,omitempty" db:"telefono"`
	Ciudad   *string `json:"ciudad,omitempty" db:"ciudad"`
	Direccion *string `json:"direccion,omitempty" db:"direccion"`
	IsActive bool   `json:"isActive" db:"is_active"`

	types.BaseEntity
	types.SoftDelete
}
