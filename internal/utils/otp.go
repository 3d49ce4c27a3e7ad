package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP returns a 6-digit numeric one-time code as a string.
// The code is drawn from the OS CSPRNG and is always exactly six digits,
// zero-padded when necessary.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("error generating one-time code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
