package authz

// Capability tokens issued by the backend. Membership is all that matters;
// the admin role short-circuits every check without being enumerated here.
const (
	ProcesosViewAll    = "procesos:view_all"
	ProcesosViewOwn    = "procesos:view_own"
	ProcesosViewDetail = "procesos:view_detail"

	ReportsView   = "reports:view"
	ReportsExport = "reports:export"

	UsersView   = "users:view"
	UsersManage = "users:manage"

	InmoView   = "inmo:view"
	InmoManage = "inmo:manage"
)

// Catalog lists every assignable permission, used to validate the payload
// of the permission editor.
var Catalog = []string{
	ProcesosViewAll,
	ProcesosViewOwn,
	ProcesosViewDetail,
	ReportsView,
	ReportsExport,
	UsersView,
	UsersManage,
	InmoView,
	InmoManage,
}

// IsKnownPermission reports whether token belongs to the catalog.
func IsKnownPermission(token string) bool {
	for _, p := range Catalog {
		if p == token {
			return true
		}
	}
	return false
}
