// Package share issues and verifies stateless links that reproduce a
// calculation. The calculator slug and its input travel inside an HS256
// token; nothing is stored server-side.
package share

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	issuer  = "dunklab"
	keyInfo = "dunklab share"
	keySize = 32
)

// Link is the content of a verified share token.
type Link struct {
	Calculator string
	Input      json.RawMessage
	ExpiresAt  time.Time
}

type claims struct {
	Calc  string          `json:"calc"`
	Input json.RawMessage `json:"input"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSigner derives the signing key from secret.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("share: ttl must be positive, got %s", ttl)
	}
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("share: derive key: %w", err)
	}
	return &Signer{key: key, ttl: ttl, now: time.Now}, nil
}

// Sign returns a token for the calculator and its input.
func (s *Signer) Sign(calculator string, input json.RawMessage) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Calc:  calculator,
		Input: input,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("share: sign: %w", err)
	}
	return signed, exp.Truncate(time.Second), nil
}

// Parse verifies token and returns its content.
func (s *Signer) Parse(token string) (*Link, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if c.Calc == "" || len(c.Input) == 0 {
		return nil, fmt.Errorf("%w: missing calculator or input", ErrInvalidToken)
	}
	return &Link{Calculator: c.Calc, Input: c.Input, ExpiresAt: c.ExpiresAt.Time}, nil
}
