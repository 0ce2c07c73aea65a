package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"PatientBilling/middlewares"
	"PatientBilling/services"
)

type PatientCreateRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
}

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req PatientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}
	patient, err := h.service.Create(c.Request.Context(), req.Name, req.DateOfBirth)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusCreated)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, patients, http.StatusOK)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, err := parseID(c.Param("patient_id"))
	if err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusOK)
}

func (h *PatientHandler) GetPatientInvoices(c *gin.Context) {
	id, err := parseID(c.Param("patient_id"))
	if err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	invoices, err := h.service.ListInvoices(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, invoices, http.StatusOK)
}
