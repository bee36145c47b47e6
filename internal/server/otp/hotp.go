package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"fmt"
	"math"
	"strings"
)

// hotp derives an n-digit one-time code from the shared secret and a counter
// value (RFC 4226 with an arbitrary-length counter). The counter here is the
// raw 16 bytes of the ticket id rather than an 8-byte sequence number; both
// sides derive the code from the same stored identifier, so no increment
// protocol is needed.
func hotp(secret, counter []byte, digits int) string {
	mac := hmac.New(sha1.New, secret)
	mac.Write(counter)
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := (uint32(sum[offset])&0x7f)<<24 |
		uint32(sum[offset+1])<<16 |
		uint32(sum[offset+2])<<8 |
		uint32(sum[offset+3])

	code %= uint32(math.Pow10(digits))

	return fmt.Sprintf("%0*d", digits, code)
}

// codesEqual compares two codes in constant time.
func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// decodeSecret accepts the shared secret either as base32 (the common
// authenticator-style representation) or as a raw string.
func decodeSecret(secret string) []byte {
	normalized := strings.ToUpper(strings.TrimRight(secret, "="))
	if b, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized); err == nil {
		return b
	}
	return []byte(secret)
}
