package utils

import (
	"crypto/rand"
	"lexbook-service/internal/pkg/constvars"
	"math/big"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

// GenerateTemporaryPassword produces a random alphanumeric password for
// accounts provisioned during booking. The password is shown to the client
// once and never stored in cleartext.
func GenerateTemporaryPassword(length int) (string, error) {
	const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	max := big.NewInt(int64(len(passwordChars)))

	password := make([]byte, length)
	for i := range password {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = passwordChars[num.Int64()]
	}

	return string(password), nil
}
