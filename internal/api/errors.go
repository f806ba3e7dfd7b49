package api

import (
	"errors"
	"net/http"
	"slot_machine/internal/model"
)

// StatusFor - HTTP-статус для ошибки сервиса
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrSessionInactive):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
