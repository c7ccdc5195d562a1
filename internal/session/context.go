package session

import (
	"context"

	"github.com/JuanDPAffi/redelex-api/pkg/contextkeys"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

// FromContext returns the session placed in the request context by the
// auth middleware.
func FromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(contextkeys.SessionKey).(*Session)
	if !ok || sess == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return sess, nil
}
