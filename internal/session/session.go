package session

// Role is the coarse identity category of an authenticated user. Values
// outside the known set are kept verbatim and treated as unrecognized by
// the authorization layer.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleAffi         Role = "affi"
	RoleInmobiliaria Role = "inmobiliaria"
)

// KnownRoles is the closed set accepted by the panel shell.
var KnownRoles = []Role{RoleAdmin, RoleAffi, RoleInmobiliaria}

// Session is the authenticated identity read synchronously by guards and
// the menu filter. Instances are treated as immutable; Store hands out
// copies.
type Session struct {
	UserID         uint64   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           Role     `json:"role"`
	Permissions    []string `json:"permissions"`
	InmobiliariaID uint64   `json:"inmobiliariaId,omitempty"`
}

// Clone returns an independent copy so callers can never mutate the
// store's cached value through a returned pointer.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Permissions = append([]string(nil), s.Permissions...)
	return &cp
}

// RawProfile is an identity payload as produced by login or a profile
// refresh. Historical backend responses used Spanish field spellings, so
// both are accepted and normalized.
type RawProfile struct {
	ID             uint64   `json:"id"`
	LegacyID       uint64   `json:"_id,omitempty"`
	Name           string   `json:"name"`
	Nombre         string   `json:"nombre,omitempty"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	Rol            string   `json:"rol,omitempty"`
	Permissions    []string `json:"permissions"`
	InmobiliariaID uint64   `json:"inmobiliariaId,omitempty"`
}

// Normalize folds the alternate field spellings into a Session. A missing
// role defaults to inmobiliaria, matching what the legacy front end did
// for accounts created before roles existed.
func Normalize(raw RawProfile) *Session {
	id := raw.ID
	if id == 0 {
		id = raw.LegacyID
	}
	name := raw.Name
	if name == "" {
		name = raw.Nombre
	}
	role := raw.Role
	if role == "" {
		role = raw.Rol
	}
	if role == "" {
		role = string(RoleInmobiliaria)
	}
	perms := append([]string(nil), raw.Permissions...)
	if perms == nil {
		perms = []string{}
	}
	return &Session{
		UserID:         id,
		Name:           name,
		Email:          raw.Email,
		Role:           Role(role),
		Permissions:    perms,
		InmobiliariaID: raw.InmobiliariaID,
	}
}
