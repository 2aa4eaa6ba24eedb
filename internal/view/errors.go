package view

import (
	"net/http"

	"github.com/junctionlabs/junction-backend/internal/model"
)

// ErrorStatus maps the settlement error taxonomy to HTTP statuses. Errors
// outside the taxonomy are internal faults.
func ErrorStatus(err error) int {
	switch err {
	case nil:
		return http.StatusOK
	case model.ErrInsufficientFunds,
		model.ErrInvalidDuration,
		model.ErrSameRequest,
		model.ErrIncompatible,
		model.ErrUnsupportedChain,
		model.ErrInvalidAddress,
		model.ErrOverflow:
		return http.StatusBadRequest
	case model.ErrNotFound:
		return http.StatusNotFound
	case model.ErrExpired:
		return http.StatusGone
	}
	return http.StatusInternalServerError
}
