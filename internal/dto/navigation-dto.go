package dto

type AuthorizePathDTO struct {
	Path string `json:"path" validate:"required"`
}

type NavigationDecisionDTO struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`
}
