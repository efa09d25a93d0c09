package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateReceiptNumber generates a display-only receipt reference token.
// Not globally unique; unique enough for a printed reference.
func GenerateReceiptNumber() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
