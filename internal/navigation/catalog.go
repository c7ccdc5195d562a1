package navigation

import (
	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// Route binds an SPA path to its guard chain. Guards run in order; the
// first denial wins. Prefix routes match any deeper path (detail pages
// with an id segment).
type Route struct {
	Path   string
	Prefix bool
	Guards []authz.Guard
}

var panelRoles = []session.Role{session.RoleAdmin, session.RoleAffi, session.RoleInmobiliaria}

// Routes declares the guarded navigation surface. Bienvenida deliberately
// carries only the authentication guard: it is the resolver's fallback and
// must stay reachable for any authenticated session, including ones whose
// role the shell does not recognize.
func Routes(nav *authz.Navigator) []Route {
	panel := nav.RoleGuard(panelRoles...)
	return []Route{
		{Path: authz.LoginPath, Guards: nil},
		{Path: authz.RegisterPath, Guards: nil},

		{Path: authz.PanelPath, Guards: []authz.Guard{panel, nav.LandingGuard()}},
		{Path: authz.BienvenidaPath, Guards: []authz.Guard{nav.AuthGuard()}},

		{Path: authz.MisProcesosPath, Guards: []authz.Guard{panel, nav.PermissionGuard(authz.ProcesosViewOwn)}},
		{Path: authz.ConsultarProcesoPath, Guards: []authz.Guard{panel, nav.PermissionGuard(authz.ProcesosViewAll)}},
		{Path: authz.InformeInmobiliariaPath, Guards: []authz.Guard{panel, nav.PermissionGuard(authz.ReportsView)}},
		{Path: authz.ProcesoDetallePath, Prefix: true, Guards: []authz.Guard{panel}},

		{Path: authz.UsuariosPath, Guards: []authz.Guard{panel, nav.PermissionGuard(authz.UsersView)}},
		{Path: authz.InmobiliariasPath, Guards: []authz.Guard{panel, nav.PermissionGuard(authz.InmoView)}},
	}
}

// MenuSections declares the full sidebar. Entries are gated by the same
// permission tokens as their routes; the legacy role lists were dropped
// when the guards moved to permissions, precisely to keep menu and guards
// from diverging.
func MenuSections() []authz.MenuSection {
	return []authz.MenuSection{
		{
			ID:    "consultas",
			Title: "Consulta de Procesos",
			Order: 1,
			Entries: []authz.MenuEntry{
				{
					ID:          "redelex-mis-procesos",
					Label:       "Mis Procesos",
					Icon:        "folder",
					Route:       authz.MisProcesosPath,
					Permissions: []string{authz.ProcesosViewOwn},
					Order:       1,
				},
				{
					ID:          "redelex-consultar",
					Label:       "Consultar Procesos",
					Icon:        "search",
					Route:       authz.ConsultarProcesoPath,
					Permissions: []string{authz.ProcesosViewAll},
					Order:       2,
				},
				{
					ID:          "redelex-informe",
					Label:       "Informe Inmobiliaria",
					Icon:        "bar-chart-2",
					Route:       authz.InformeInmobiliariaPath,
					Permissions: []string{authz.ReportsView},
					Order:       3,
				},
			},
		},
		{
			ID:    "sistema",
			Title: "Sistema",
			Order: 2,
			Entries: []authz.MenuEntry{
				{
					ID:          "inmo-list",
					Label:       "Inmobiliarias",
					Icon:        "home",
					Route:       authz.InmobiliariasPath,
					Permissions: []string{authz.InmoView},
					Order:       1,
				},
				{
					ID:          "users-list",
					Label:       "Usuarios",
					Icon:        "users",
					Route:       authz.UsuariosPath,
					Permissions: []string{authz.UsersView},
					Order:       2,
				},
			},
		},
	}
}
