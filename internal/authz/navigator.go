package authz

import (
	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// SPA paths served by the shell. The panel children are permission-gated;
// bienvenida requires authentication only, which makes it a structurally
// safe denial fallback.
const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"

	PanelPath               = "/panel"
	BienvenidaPath          = "/panel/bienvenida"
	MisProcesosPath         = "/panel/consultas/mis-procesos"
	ConsultarProcesoPath    = "/panel/consultas/consultar-proceso"
	InformeInmobiliariaPath = "/panel/consultas/informe-inmobiliaria"
	ProcesoDetallePath      = "/panel/consultas/proceso"
	UsuariosPath            = "/panel/usuarios"
	InmobiliariasPath       = "/panel/inmobiliarias"
)

// RoutePolicy associates a capability with the landing page it unlocks.
type RoutePolicy struct {
	Permission string
	Path       string
}

// DefaultPolicy is the landing priority observed in production: global
// search first, own records second, reporting third. The order has shifted
// between revisions, so it is data rather than code.
var DefaultPolicy = []RoutePolicy{
	{Permission: ProcesosViewAll, Path: ConsultarProcesoPath},
	{Permission: ProcesosViewOwn, Path: MisProcesosPath},
	{Permission: ReportsView, Path: InformeInmobiliariaPath},
}

// Navigator computes the default landing route for a session. It is
// deterministic: the same session always resolves to the same path, which
// makes it safe to call repeatedly while breaking redirect loops.
type Navigator struct {
	policy   []RoutePolicy
	login    string
	fallback string
}

func NewNavigator(policy []RoutePolicy) *Navigator {
	if policy == nil {
		policy = DefaultPolicy
	}
	return &Navigator{
		policy:   policy,
		login:    LoginPath,
		fallback: BienvenidaPath,
	}
}

// ResolveDefaultRoute returns the first policy path whose permission the
// session holds, the login path for a nil session, and the authenticated
// fallback when nothing matches. The fallback has no permission
// requirement, so the result is always reachable by the same session.
func (n *Navigator) ResolveDefaultRoute(s *session.Session) string {
	if s == nil {
		return n.login
	}
	for _, rp := range n.policy {
		if HasPermission(s, rp.Permission) {
			return rp.Path
		}
	}
	return n.fallback
}

func (n *Navigator) LoginPath() string { return n.login }
