package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Header carries the relay's hex-encoded HMAC-SHA256 of the raw request body.
const Header = "x-internal-signature"

// Verifier authenticates relay messages with a shared-secret keyed hash.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign computes the hex-encoded HMAC-SHA256 over body.
func (v *Verifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided matches the signature of body.
// Comparison is constant-time; a missing or malformed signature never matches.
func (v *Verifier) Verify(body []byte, provided string) bool {
	if provided == "" {
		return false
	}
	decoded, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), decoded)
}
