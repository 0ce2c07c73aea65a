package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"PatientBilling/middlewares"
	"PatientBilling/utils"
)

// respondDomainError maps the typed domain failures onto HTTP statuses.
// The domain layers never see transport concerns; this is the only place
// that translation happens.
func respondDomainError(c *gin.Context, err error) {
	var validationErr *utils.ValidationError
	switch {
	case errors.As(err, &validationErr):
		middlewares.HttpError(c, validationErr.Message, http.StatusBadRequest, err)
	case errors.Is(err, utils.ErrPatientNotFound), errors.Is(err, utils.ErrInvoiceNotFound):
		middlewares.HttpError(c, err.Error(), http.StatusNotFound, err)
	case errors.Is(err, utils.ErrInvoiceAlreadyPaid):
		middlewares.HttpError(c, err.Error(), http.StatusConflict, err)
	default:
		middlewares.HttpError(c, "internal server error", http.StatusInternalServerError, err)
	}
}
