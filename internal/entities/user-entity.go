package entities

import (
	"github.com/JuanDPAffi/redelex-api/pkg/types"
)

type User struct {
	ID    uint64 `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	Role        string   `json:"role" db:"role"`
	Permissions []string `json:"permissions" db:"permissions"`

	IsActive      bool `json:"isActive" db:"is_active"`
	LoginAttempts int  `json:"loginAttempts" db:"login_attempts"`

	InmobiliariaID     *uint64 `json:"inmobiliariaId,omitempty" db:"inmobiliaria_id"`
	NombreInmobiliaria *string `json:"nombreInmobiliaria,omitempty" db:"nombre_inmobiliaria"`
	Nit                *string `json:"nit,omitempty" db:"nit"`
	CodigoInmobiliaria *string `json:"codigoInmobiliaria,omitempty" db:"codigo_inmobiliaria"`

	types.BaseEntity
	types.SoftDelete
}
