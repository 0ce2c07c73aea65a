package utils

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"PatientBilling/models"
)

// Lookup and state errors
var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
)

// MaxInvoiceAmount is the inclusive upper bound on an invoice amount.
var MaxInvoiceAmount = decimal.NewFromInt(1_000_000)

// ValidationError reports malformed or out-of-range input, or a referenced
// entity that fails a business-rule check at write time. Handlers map it to
// a bad-request response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidatePatientInput validates patient creation input using ozzo-validation.
// The name is expected to be already trimmed.
func ValidatePatientInput(name, dateOfBirth string) error {
	err := validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name is required"),
			validation.Length(1, 120).Error("name must be at most 120 characters")),
		"date_of_birth": validation.Validate(dateOfBirth,
			validation.Required.Error("date of birth is required"),
			validation.Date(models.DateOfBirthLayout).Error("date of birth must be a valid YYYY-MM-DD date")),
	}.Filter()
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// ValidateInvoiceAmount checks the (0, 1_000_000] range on an invoice amount.
func ValidateInvoiceAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("amount must be greater than 0")
	}
	if amount.GreaterThan(MaxInvoiceAmount) {
		return NewValidationError("amount must not exceed %s", MaxInvoiceAmount.String())
	}
	return nil
}
