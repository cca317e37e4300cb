package telnyx

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	SignatureHeader = "telnyx-signature-ed25519"
	TimestampHeader = "telnyx-timestamp"

	signatureTolerance = 5 * time.Minute
)

var (
	ErrMissingSignature = errors.New("missing telnyx signature headers")
	ErrInvalidSignature = errors.New("invalid telnyx signature")
	ErrStaleTimestamp   = errors.New("telnyx timestamp outside tolerance")
)

// Verifier checks the ed25519 signature Telnyx puts on each webhook. The signed
// message is "<timestamp>|<raw body>".
type Verifier struct {
	publicKey ed25519.PublicKey
	now       func() time.Time
}

// NewVerifier takes the base64 public key from the Telnyx portal.
func NewVerifier(publicKeyBase64 string) (*Verifier, error) {
	key, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode telnyx public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("telnyx public key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	return &Verifier{publicKey: ed25519.PublicKey(key), now: time.Now}, nil
}

func (v *Verifier) Verify(body []byte, signature, timestamp string) error {
	if signature == "" || timestamp == "" {
		return ErrMissingSignature
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	seconds, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	if math.Abs(v.now().Sub(time.Unix(seconds, 0)).Seconds()) > signatureTolerance.Seconds() {
		return ErrStaleTimestamp
	}

	message := make([]byte, 0, len(timestamp)+1+len(body))
	message = append(message, timestamp...)
	message = append(message, '|')
	message = append(message, body...)
	if !ed25519.Verify(v.publicKey, message, sig) {
		return ErrInvalidSignature
	}
	return nil
}
