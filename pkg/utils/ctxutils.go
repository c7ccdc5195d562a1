package utils

import (
	"context"

	"github.com/JuanDPAffi/redelex-api/pkg/contextkeys"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return userID, nil
}
