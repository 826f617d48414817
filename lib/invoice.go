package lib

import (
	"crypto/rand"
	"fmt"
)

// GenerateInvoiceId generates an invoice identifier in the format INV-XXXXXXXX
// where XXXXXXXX is a random 8-character alphanumeric string
func GenerateInvoiceId() (string, error) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invoice id: %w", err)
	}

	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}

	return fmt.Sprintf("INV-%s", string(b)), nil
}
