package services

import (
	"context"

	"github.com/shopspring/decimal"

	"PatientBilling/models"
	"PatientBilling/utils"
)

// InvoiceRepository is the store surface the invoice operations need.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id uint) (*models.Invoice, error)
	GetByPatient(ctx context.Context, patientID uint) ([]models.Invoice, error)
	Filter(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
	Pay(ctx context.Context, id uint) (*models.Invoice, error)
}

type InvoiceService struct {
	invoices InvoiceRepository
	patients PatientRepository
}

func NewInvoiceService(invoices InvoiceRepository, patients PatientRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices, patients: patients}
}

// Create validates and persists a new pending invoice. A nonexistent
// patient id is a validation failure, not a lookup miss: the invoice is
// the resource being created and the bad reference is the caller's error.
func (s *InvoiceService) Create(ctx context.Context, patientID uint, amount decimal.Decimal) (*models.Invoice, error) {
	if err := utils.ValidateInvoiceAmount(amount); err != nil {
		return nil, err
	}

	exists, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewValidationError("patient with id %d does not exist", patientID)
	}

	invoice := &models.Invoice{
		PatientID: patientID,
		Amount:    amount,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

// Pay transitions a pending invoice to paid. Paying an already-paid
// invoice is rejected, never silently accepted.
func (s *InvoiceService) Pay(ctx context.Context, id uint) (*models.Invoice, error) {
	return s.invoices.Pay(ctx, id)
}

// Filter parses the status predicate and runs the invoice query.
func (s *InvoiceService) Filter(ctx context.Context, query models.InvoiceQuery) ([]models.Invoice, error) {
	filter := models.InvoiceFilter{
		PatientID: query.PatientID,
		MinAmount: query.MinAmount,
		MaxAmount: query.MaxAmount,
		From:      query.From,
		To:        query.To,
	}

	if query.Status != "" {
		status, err := models.ParseInvoiceStatus(query.Status)
		if err != nil {
			return nil, utils.NewValidationError("%s", err.Error())
		}
		filter.Status = &status
	}

	return s.invoices.Filter(ctx, filter)
}
