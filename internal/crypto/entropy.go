package crypto

import (
	"math"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// MinEntropyBits is the strength below which a generated password is
// reported as weak.
const MinEntropyBits = 60

// Entropy estimates the strength of password in bits, based on the
// character pools it actually uses.
func Entropy(password string) float64 {
	return math.Round(passwordvalidator.GetEntropy(password)*100) / 100
}

// CheckStrength returns an error if password falls below minBits.
func CheckStrength(password string, minBits float64) error {
	return passwordvalidator.Validate(password, minBits)
}
