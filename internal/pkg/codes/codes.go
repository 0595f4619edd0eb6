package codes

import (
	"crypto/rand"
	"fmt"
)

// alphabet deliberately omits 0/O and 1/I to keep codes easy to type.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultLength is the length of generated access codes.
const DefaultLength = 8

// Generate returns a new random access code of the given length.
// Codes are human-typed credentials, not secrets; uniqueness is enforced
// by the database, not by this generator.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf), nil
}
