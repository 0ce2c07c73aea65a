package controllers

import (
	"github.com/gin-gonic/gin"

	"PatientBilling/handlers"
)

// SetupBillingRoutes registers the patient and invoice routes.
func SetupBillingRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, invoiceHandler *handlers.InvoiceHandler) {
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.GET("/patients/:patient_id/invoices", patientHandler.GetPatientInvoices)

	router.POST("/invoices", invoiceHandler.CreateInvoice)
	router.GET("/invoices", invoiceHandler.FilterInvoices)
	router.GET("/invoices/:id", invoiceHandler.GetInvoiceByID)
	router.PUT("/invoices/:id/pay", invoiceHandler.PayInvoice)
}
