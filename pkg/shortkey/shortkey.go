// Package shortkey encodes and decodes short keys.
//
// A short key wraps a Base62-encoded record id in a 4-character random key:
// the first 2 characters of the random key become the prefix, the last 2 the
// suffix. The random characters make the key non-guessable even though the
// ids themselves are sequential.
//
//	Merge(12345, "AbXy") -> "Ab3D7Xy"
//	Split("Ab3D7Xy")     -> 12345, "AbXy"
package shortkey

import (
	"errors"
	"math"
	"strings"
)

const (
	// PrefixLen is the number of random characters before the encoded id.
	PrefixLen = 2

	// SuffixLen is the number of random characters after the encoded id.
	SuffixLen = 2

	// RandomKeyLen is the total length of the random key stored alongside a record.
	RandomKeyLen = PrefixLen + SuffixLen

	// MinKeyLen is the shortest possible valid short key: prefix + one Base62 digit + suffix.
	MinKeyLen = PrefixLen + 1 + SuffixLen
)

// Digit order matters: '0'-'9' < 'A'-'Z' < 'a'-'z'.
const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base = 62

var (
	// ErrInvalidInput is returned by Merge when the id or random key cannot be encoded.
	// Hitting it means a caller bug, not bad user input.
	ErrInvalidInput = errors.New("shortkey: invalid id or random key")

	// ErrMalformedKey is returned by Split for any key that does not parse.
	// Callers treat it the same as an unknown key.
	ErrMalformedKey = errors.New("shortkey: malformed short key")
)

var charValues [256]int8

func init() {
	for i := range charValues {
		charValues[i] = -1
	}
	for i := 0; i < len(base62Chars); i++ {
		charValues[base62Chars[i]] = int8(i)
	}
}

// Merge builds a short key from a record id and its 4-character random key.
// The id must be positive; the random key must be exactly RandomKeyLen
// printable ASCII characters.
func Merge(id int64, randomKey string) (string, error) {
	if id < 1 {
		return "", ErrInvalidInput
	}
	if len(randomKey) != RandomKeyLen || !isASCII(randomKey) {
		return "", ErrInvalidInput
	}

	var sb strings.Builder
	sb.Grow(RandomKeyLen + 11)
	sb.WriteString(randomKey[:PrefixLen])
	sb.WriteString(encode(id))
	sb.WriteString(randomKey[PrefixLen:])

	return sb.String(), nil
}

// Split decodes a short key back into the record id and the random key.
// It is the single gate every redirect request passes through, so it rejects
// anything non-conforming before the store is ever touched.
func Split(key string) (int64, string, error) {
	if len(key) < MinKeyLen || !isASCII(key) {
		return 0, "", ErrMalformedKey
	}

	prefix := key[:PrefixLen]
	suffix := key[len(key)-SuffixLen:]
	payload := key[PrefixLen : len(key)-SuffixLen]

	id, err := decode(payload)
	if err != nil {
		return 0, "", err
	}

	return id, prefix + suffix, nil
}

// encode converts a positive int64 to Base62 without padding.
func encode(n int64) string {
	buf := make([]byte, 0, 11) // 62^11 > MaxInt64
	for n > 0 {
		buf = append(buf, base62Chars[n%base])
		n /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// decode converts a Base62 payload to an int64, rejecting empty payloads,
// characters outside the alphabet and values that overflow int64.
func decode(s string) (int64, error) {
	if s == "" {
		return 0, ErrMalformedKey
	}

	var n int64
	for i := 0; i < len(s); i++ {
		v := charValues[s[i]]
		if v < 0 {
			return 0, ErrMalformedKey
		}
		if n > (math.MaxInt64-int64(v))/base {
			return 0, ErrMalformedKey
		}
		n = n*base + int64(v)
	}

	return n, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
