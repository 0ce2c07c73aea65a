package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInvoiceStatus(t *testing.T) {
	tests := []struct {
		input string
		want  InvoiceStatus
	}{
		{"Pending", InvoiceStatusPending},
		{"pending", InvoiceStatusPending},
		{"PENDING", InvoiceStatusPending},
		{"Paid", InvoiceStatusPaid},
		{"paid", InvoiceStatusPaid},
		{"PAID", InvoiceStatusPaid},
	}

	for _, tt := range tests {
		got, err := ParseInvoiceStatus(tt.input)
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseInvoiceStatus("bogus")
	assert.Error(t, err)

	_, err = ParseInvoiceStatus("")
	assert.Error(t, err)
}
