package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator produces random (version 4) identifiers in lowercase
// canonical form.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID v4 string. The error is non-nil only when the
// system random source fails.
func (g *UUIDGenerator) Generate() (string, error) {
	v4, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("error generating uuid: %w", err)
	}

	return v4.String(), nil
}
