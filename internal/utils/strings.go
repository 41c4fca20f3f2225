package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
)

var slugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// GenerateRandomHex generates a random hex string of the specified length
func GenerateRandomHex(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes)[:length], nil
}

// RandomIntInRange returns a uniformly distributed integer in [min, max]
func RandomIntInRange(min, max int64) (int64, error) {
	if max < min {
		return 0, fmt.Errorf("invalid range [%d, %d]", min, max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return min + n.Int64(), nil
}

// IsValidSlug checks that s contains only letters, digits, underscores and hyphens
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}
