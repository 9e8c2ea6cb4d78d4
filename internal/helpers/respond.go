package helpers

import (
	"encoding/json"
	"net/http"

	"api/internal/models"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

// RespondWithJSON writes a success envelope wrapping data.
func RespondWithJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, models.Response{Success: true, Data: data})
}

// RespondWithMessage writes a success envelope carrying only a message.
func RespondWithMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{Success: true, Message: message})
}

// RespondWithError writes an error envelope with a stable error code.
func RespondWithError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, models.Error{Success: false, Error: code, StatusCode: status})
}
