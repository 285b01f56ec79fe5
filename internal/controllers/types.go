package controllers

import (
	"errors"
	"net/http"

	"github.com/financas-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrEmailTaken) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

type IDURI struct {
	ID uint `uri:"id" binding:"required"` // ID of the resource
}

type UserURI struct {
	UserID uint `uri:"user_id" binding:"required"` // ID of the user
}

type MonthURI struct {
	UserURI
	Month int `uri:"mes" binding:"required"` // Month, 1 to 12
	Year  int `uri:"ano" binding:"required"` // Year in YYYY format
}

type YearURI struct {
	UserURI
	Year int `uri:"ano" binding:"required"` // Year in YYYY format
}

type UserIDQuery struct {
	UserID uint `form:"user_id"`
}

var errUserIDRequired = errors.New("o id do usuário é obrigatório")
