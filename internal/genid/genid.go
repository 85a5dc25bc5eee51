package genid

import (
	"crypto/rand"

	"github.com/google/uuid"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Element generates a random alphanumeric id of the given length, for
// entities, relations, and generalizations.
func Element(length int) string {
	if length <= 0 {
		length = 16
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic("genid: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

// View returns a new uuid-backed id for a diagram or view.
func View() string {
	return uuid.NewString()
}
