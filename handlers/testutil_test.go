package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"PatientBilling/models"
	"PatientBilling/services"
	"PatientBilling/utils"
)

// fakeStore is an in-memory stand-in for the repositories, good enough to
// drive the handlers and services end to end.
type fakeStore struct {
	patients      map[uint]*models.Patient
	invoices      map[uint]*models.Invoice
	nextPatientID uint
	nextInvoiceID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		patients: make(map[uint]*models.Patient),
		invoices: make(map[uint]*models.Invoice),
	}
}

type fakePatientRepo struct{ store *fakeStore }

func (r *fakePatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	r.store.nextPatientID++
	patient.ID = r.store.nextPatientID
	copied := *patient
	r.store.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, ok := r.store.patients[id]
	if !ok {
		return nil, utils.ErrPatientNotFound
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepo) GetAll(ctx context.Context) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(r.store.patients))
	for _, patient := range r.store.patients {
		out = append(out, *patient)
	}
	return out, nil
}

func (r *fakePatientRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.store.patients[id]
	return ok, nil
}

type fakeInvoiceRepo struct{ store *fakeStore }

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	r.store.nextInvoiceID++
	invoice.ID = r.store.nextInvoiceID
	invoice.Status = models.InvoiceStatusPending
	invoice.CreatedAtUtc = time.Now().UTC()
	invoice.PaidAtUtc = nil
	copied := *invoice
	r.store.invoices[invoice.ID] = &copied
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	invoice, ok := r.store.invoices[id]
	if !ok {
		return nil, utils.ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) GetByPatient(ctx context.Context, patientID uint) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, invoice := range r.store.invoices {
		if invoice.PatientID == patientID {
			out = append(out, *invoice)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeInvoiceRepo) Filter(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, invoice := range r.store.invoices {
		if filter.PatientID != nil && invoice.PatientID != *filter.PatientID {
			continue
		}
		if filter.Status != nil && invoice.Status != *filter.Status {
			continue
		}
		if filter.MinAmount != nil && invoice.Amount.LessThan(*filter.MinAmount) {
			continue
		}
		if filter.MaxAmount != nil && invoice.Amount.GreaterThan(*filter.MaxAmount) {
			continue
		}
		if filter.From != nil && invoice.CreatedAtUtc.Before(*filter.From) {
			continue
		}
		if filter.To != nil && invoice.CreatedAtUtc.After(*filter.To) {
			continue
		}
		out = append(out, *invoice)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeInvoiceRepo) Pay(ctx context.Context, id uint) (*models.Invoice, error) {
	invoice, ok := r.store.invoices[id]
	if !ok {
		return nil, utils.ErrInvoiceNotFound
	}
	if invoice.Status == models.InvoiceStatusPaid {
		return nil, utils.ErrInvoiceAlreadyPaid
	}
	now := time.Now().UTC()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAtUtc = &now
	copied := *invoice
	return &copied, nil
}

func sortNewestFirst(invoices []models.Invoice) {
	sort.Slice(invoices, func(i, j int) bool {
		if invoices[i].CreatedAtUtc.Equal(invoices[j].CreatedAtUtc) {
			return invoices[i].ID > invoices[j].ID
		}
		return invoices[i].CreatedAtUtc.After(invoices[j].CreatedAtUtc)
	})
}

// newTestRouter wires the real handlers and services over the fake store.
func newTestRouter() (*gin.Engine, *fakeStore) {
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	patientRepo := &fakePatientRepo{store: store}
	invoiceRepo := &fakeInvoiceRepo{store: store}

	patientService := services.NewPatientService(patientRepo, invoiceRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, patientRepo)

	patientHandler := NewPatientHandler(patientService)
	invoiceHandler := NewInvoiceHandler(invoiceService)

	router := gin.New()
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.GET("/patients/:patient_id/invoices", patientHandler.GetPatientInvoices)
	router.POST("/invoices", invoiceHandler.CreateInvoice)
	router.GET("/invoices", invoiceHandler.FilterInvoices)
	router.GET("/invoices/:id", invoiceHandler.GetInvoiceByID)
	router.PUT("/invoices/:id/pay", invoiceHandler.PayInvoice)
	return router, store
}
