package utils

import (
	"crypto/rand"
	"fmt"
)

// MakeOrderCode returns a short human-readable code like "FZ-3F9A1C".
// Codes are random, not collision-checked; the order id stays the real key.
func MakeOrderCode() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; keep the order flow alive.
		return "FZ-000000"
	}
	return fmt.Sprintf("FZ-%02X%02X%02X", buf[0], buf[1], buf[2])
}
