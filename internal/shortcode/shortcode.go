// Package shortcode issues the fixed-length public identifiers assigned to
// cards. Codes are drawn from a cryptographically secure source and checked
// for uniqueness before being handed out.
package shortcode

import (
	"crypto/rand"
	"errors"
)

const (
	// Length of every issued code.
	Length = 7

	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	maxAttempts = 10
)

// ErrExhausted is returned when the retry budget is spent without finding a
// free code. With 62^7 possible codes this signals a generator or
// uniqueness-check bug rather than legitimate collision pressure.
var ErrExhausted = errors.New("shortcode: could not find a free code")

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(code string) (bool, error)

type Generator struct {
	exists ExistsFunc
}

func NewGenerator(exists ExistsFunc) *Generator {
	return &Generator{exists: exists}
}

// Issue returns a code that was free at the time of the uniqueness check.
// Callers persisting the code must still be prepared for a concurrent mint
// winning the insert; the store's unique constraint is the final arbiter.
func (g *Generator) Issue() (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := Random()
		if err != nil {
			return "", err
		}

		taken, err := g.exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	return "", ErrExhausted
}

// Random returns a candidate code without any uniqueness guarantee. Bytes are
// drawn with rejection sampling: any byte >= 248 (the largest multiple of 62
// that fits in a byte) is discarded and redrawn, so the modulus below cannot
// skew the symbol distribution towards the low end of the alphabet.
func Random() (string, error) {
	const maxValid = byte(256 / len(alphabet) * len(alphabet))

	code := make([]byte, Length)
	buf := make([]byte, 1)

	for i := range code {
		for {
			if _, err := rand.Read(buf); err != nil {
				return "", err
			}
			if buf[0] < maxValid {
				break
			}
		}
		code[i] = alphabet[int(buf[0])%len(alphabet)]
	}

	return string(code), nil
}
