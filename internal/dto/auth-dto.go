package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterDTO is the public self-registration payload. It carries no role
// on purpose: self-registered accounts are always inmobiliaria; privileged
// accounts are created by an operator through the users resource.
type RegisterDTO struct {
	Name               string `json:"name" validate:"required,min=3"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Nit                string `json:"nit" validate:"omitempty"`
	CodigoInmobiliaria string `json:"codigoInmobiliaria" validate:"omitempty"`
}

type ActivateAccountDTO struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

type RequestPasswordResetDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserSessionDTO is the identity payload shared by login and profile
// refresh responses. The front end's session store consumes it as-is.
type UserSessionDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type AuthResponseDTO struct {
	User        UserSessionDTO `json:"user"`
	AccessToken string         `json:"accessToken"`
	// DefaultRoute tells the shell where this session lands after login.
	DefaultRoute string `json:"defaultRoute"`
}
