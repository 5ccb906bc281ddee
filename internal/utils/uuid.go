package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque record identifiers.
// UUIDv7 is preferred so that ids sort by creation time; a random v4 is
// used if the v7 generator fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
