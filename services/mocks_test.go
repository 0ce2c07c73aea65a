package services

import (
	"context"
	"errors"

	"PatientBilling/models"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ PatientRepository = (*MockPatientRepository)(nil)
	_ InvoiceRepository = (*MockInvoiceRepository)(nil)
)

// MockPatientRepository is a function-field mock of PatientRepository.
type MockPatientRepository struct {
	CreateFunc  func(ctx context.Context, patient *models.Patient) error
	GetByIDFunc func(ctx context.Context, id uint) (*models.Patient, error)
	GetAllFunc  func(ctx context.Context) ([]models.Patient, error)
	ExistsFunc  func(ctx context.Context, id uint) (bool, error)

	CreateCallCount int
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	m.CreateCallCount++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, errors.New("ExistsFunc not implemented in mock")
}

// MockInvoiceRepository is a function-field mock of InvoiceRepository.
type MockInvoiceRepository struct {
	CreateFunc       func(ctx context.Context, invoice *models.Invoice) error
	GetByIDFunc      func(ctx context.Context, id uint) (*models.Invoice, error)
	GetByPatientFunc func(ctx context.Context, patientID uint) ([]models.Invoice, error)
	FilterFunc       func(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
	PayFunc          func(ctx context.Context, id uint) (*models.Invoice, error)

	CreateCallCount int
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	m.CreateCallCount++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invoice)
	}
	return nil
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockInvoiceRepository) GetByPatient(ctx context.Context, patientID uint) ([]models.Invoice, error) {
	if m.GetByPatientFunc != nil {
		return m.GetByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockInvoiceRepository) Filter(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockInvoiceRepository) Pay(ctx context.Context, id uint) (*models.Invoice, error) {
	if m.PayFunc != nil {
		return m.PayFunc(ctx, id)
	}
	return nil, errors.New("PayFunc not implemented in mock")
}
