package services

import (
	"context"
	"strings"

	"PatientBilling/models"
	"PatientBilling/utils"
)

// PatientRepository is the store surface the patient operations need.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type PatientService struct {
	patients PatientRepository
	invoices InvoiceRepository
}

func NewPatientService(patients PatientRepository, invoices InvoiceRepository) *PatientService {
	return &PatientService{patients: patients, invoices: invoices}
}

// Create validates and persists a new patient. The name is trimmed of
// surrounding whitespace before validation, so a whitespace-only name is
// rejected as empty.
func (s *PatientService) Create(ctx context.Context, name, dateOfBirth string) (*models.Patient, error) {
	name = strings.TrimSpace(name)
	if err := utils.ValidatePatientInput(name, dateOfBirth); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		Name:        name,
		DateOfBirth: dateOfBirth,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients.GetAll(ctx)
}

// ListInvoices returns the invoices of an existing patient, newest first.
func (s *PatientService) ListInvoices(ctx context.Context, patientID uint) ([]models.Invoice, error) {
	exists, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.ErrPatientNotFound
	}
	return s.invoices.GetByPatient(ctx, patientID)
}
