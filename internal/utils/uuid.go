package utils

import "github.com/google/uuid"

// UUIDGenerator mints ids for newly created cards. V7 ids are time-ordered,
// which keeps barcode image file names roughly chronological too.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new card id, falling back to a random V4 id when V7
// generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
