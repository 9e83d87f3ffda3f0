package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

func CalculateChecksum(data string) string {
	hash := sha3.Sum224([]byte(data))
	return hex.EncodeToString(hash[:])
}
