package contextkeys

type contextKey string

const (
	UserIDKey  contextKey = "UserID"
	SessionKey contextKey = "Session"
)
