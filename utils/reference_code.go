package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferenceCode returns an n-character A-Z0-9 booking reference,
// e.g. "BK-7F3K9Q2D". Uses crypto/rand with rand.Int to avoid modulo bias.
func GenerateReferenceCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	sb.WriteString("BK-")
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// MustReferenceCode is for seeding, where crypto/rand failure is fatal
// anyway and an empty code would violate the unique index.
func MustReferenceCode() string {
	code, err := GenerateReferenceCode(8)
	if err != nil {
		panic(err)
	}
	return code
}
