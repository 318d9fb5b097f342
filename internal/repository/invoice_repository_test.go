package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceCodeFormat(t *testing.T) {
	assert.Equal(t, "INV-3-00042", invoiceCode(3, 42))
	assert.Equal(t, "INV-12-00001", invoiceCode(12, 1))
	// Counts past the zero padding keep growing instead of truncating.
	assert.Equal(t, "INV-1-123456", invoiceCode(1, 123456))
}
