// Package signature authenticates inbound webhook payloads. Verification
// always runs over the raw request bytes; re-serializing a parsed body can
// change byte content and break the HMAC comparison.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
)

var (
	// ErrMissingSignature indicates the expected signature header was absent
	ErrMissingSignature = errors.New("missing signature header")
	// ErrInvalidSignature indicates the signature did not match the payload
	ErrInvalidSignature = errors.New("invalid signature")
)

// VerifyPaystack checks the HMAC-SHA512 hex signature Paystack sends in
// x-paystack-signature against the raw body
func VerifyPaystack(rawBody []byte, header, secret string) error {
	return verify(rawBody, header, secret, sha512Digest)
}

// VerifyGeneric checks the HMAC-SHA256 hex signature used by the generic
// webhook channel
func VerifyGeneric(rawBody []byte, header, secret string) error {
	return verify(rawBody, header, secret, sha256Digest)
}

type digestFunc func(body []byte, secret string) string

func verify(rawBody []byte, header, secret string, digest digestFunc) error {
	if header == "" {
		return ErrMissingSignature
	}

	expected := digest(rawBody, secret)
	if !hmac.Equal([]byte(expected), []byte(header)) {
		return ErrInvalidSignature
	}
	return nil
}

func sha512Digest(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func sha256Digest(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
