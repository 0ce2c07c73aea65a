package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"PatientBilling/middlewares"
	"PatientBilling/models"
	"PatientBilling/services"
)

type InvoiceCreateRequest struct {
	PatientID uint            `json:"patient_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type InvoiceHandler struct {
	service *services.InvoiceService
}

func NewInvoiceHandler(service *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req InvoiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}
	invoice, err := h.service.Create(c.Request.Context(), req.PatientID, req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, invoice, http.StatusCreated)
}

func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	invoice, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, invoice, http.StatusOK)
}

func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	invoice, err := h.service.Pay(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, invoice, http.StatusOK)
}

// FilterInvoices parses the optional query predicates and runs the
// invoice query. Every predicate is independently combinable.
func (h *InvoiceHandler) FilterInvoices(c *gin.Context) {
	query := models.InvoiceQuery{Status: c.Query("status")}

	if raw := c.Query("patientId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
			return
		}
		query.PatientID = &id
	}
	if raw := c.Query("minAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			middlewares.HttpError(c, "minAmount is not a valid decimal", http.StatusBadRequest, err)
			return
		}
		query.MinAmount = &amount
	}
	if raw := c.Query("maxAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			middlewares.HttpError(c, "maxAmount is not a valid decimal", http.StatusBadRequest, err)
			return
		}
		query.MaxAmount = &amount
	}
	if raw := c.Query("from"); raw != "" {
		t, err := parseUTCTime(raw)
		if err != nil {
			middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
			return
		}
		query.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseUTCTime(raw)
		if err != nil {
			middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
			return
		}
		query.To = &t
	}

	invoices, err := h.service.Filter(c.Request.Context(), query)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	middlewares.RespondJSON(c, invoices, http.StatusOK)
}
