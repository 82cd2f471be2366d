package utils

import (
	"errors"
	"net/http"

	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildErrorResponse writes the error envelope. CustomErrors keep their
// status code and client message; anything else becomes an opaque 500. The
// dev message is only echoed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		log.Error(err.Error())
		writeJSON(w, constvars.StatusInternalServerError, exceptions.CustomError{
			StatusCode:    constvars.StatusInternalServerError,
			Success:       false,
			ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
		})
		return
	}

	log.Error(customErr.DevMessage,
		zap.String("file", customErr.Location.File),
		zap.Int("line", customErr.Location.Line),
		zap.String("function", customErr.Location.FunctionName),
	)

	response := exceptions.CustomError{
		StatusCode:    customErr.StatusCode,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
	}
	if GetEnvString("APP_ENV", "development") != "production" {
		response.DevMessage = customErr.DevMessage
	}
	writeJSON(w, customErr.StatusCode, response)
}
