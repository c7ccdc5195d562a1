package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse resolves the HTTP status and user-facing message for any
// service-layer error and logs the underlying cause. Validation errors
// surface as 400 with the offending fields.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.Status(err)
	message := apperrors.Message(err)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		code = http.StatusBadRequest
		message = "datos de entrada no válidos"
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		return ctx.JSON(code, &HttpResponse{
			Status:  false,
			Body:    map[string]interface{}{"fields": fields},
			Message: message,
		})
	}

	if code >= http.StatusInternalServerError {
		logger.Error("error no controlado",
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
