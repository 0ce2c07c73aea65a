package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateOfBirthLayout is the wire and storage format for patient dates of birth.
const DateOfBirthLayout = "2006-01-02"

// InvoiceStatus is the payment state of an invoice. The only legal
// transition is Pending -> Paid; Paid is terminal.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

// ParseInvoiceStatus parses a status string case-insensitively.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return InvoiceStatusPending, nil
	case "paid":
		return InvoiceStatusPaid, nil
	default:
		return "", fmt.Errorf("invalid status %q: use Pending or Paid", s)
	}
}

// Patient model
type Patient struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"column:name;size:120;not null" json:"name"`
	DateOfBirth string    `gorm:"column:date_of_birth;type:date;not null" json:"date_of_birth"`
	Invoices    []Invoice `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Invoice model
type Invoice struct {
	ID           uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID    uint            `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
	Status       InvoiceStatus   `gorm:"column:status;type:varchar(16);check:status IN ('Pending', 'Paid');not null;default:'Pending'" json:"status"`
	CreatedAtUtc time.Time       `gorm:"column:created_at_utc;not null;index" json:"created_at_utc"`
	PaidAtUtc    *time.Time      `gorm:"column:paid_at_utc" json:"paid_at_utc"`
	Patient      Patient         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Invoice) TableName() string {
	return "invoice"
}

// InvoiceFilter holds the optional predicates of the invoice query.
// Supplied predicates are combined with AND; amount and date bounds
// are inclusive.
type InvoiceFilter struct {
	Status    *InvoiceStatus
	PatientID *uint
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	From      *time.Time
	To        *time.Time
}

// InvoiceQuery is the invoice query as the handler hands it over, with the
// status still an unparsed string.
type InvoiceQuery struct {
	Status    string
	PatientID *uint
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	From      *time.Time
	To        *time.Time
}
