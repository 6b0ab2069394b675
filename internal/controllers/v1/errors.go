package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"this category does not exist"`
}

// status returns the appropriate HTTP status for a domain error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, models.ErrPersist) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrCategoryNotFound) || errors.Is(err, models.ErrTransactionNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Ledger errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
