// Package responsetoken signs and verifies the approve/decline links sent to
// clients with a quotation.
package responsetoken

import (
	"errors"
	"time"

	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "permit-quotation-service/response"

	ActionApprove = "approve"
	ActionDecline = "decline"

	DefaultValidity = 30 * 24 * time.Hour
)

var (
	ErrInvalidToken     = errs.Categorize("response token is invalid", errs.ErrInvalidToken)
	ErrExpiredToken     = errs.Categorize("response link has expired", errs.ErrExpiredToken)
	ErrMalformedPayload = errs.Categorize("response token payload is malformed", errs.ErrInvalidToken)
)

type Claims struct {
	QuotationID string `json:"quotation_id"`
	Action      string `json:"action"`
	jwt.RegisteredClaims
}

// Payload is the verified content of a response token.
type Payload struct {
	QuotationID uuid.UUID
	Action      string
	ExpiresAt   time.Time
}

type Signer struct {
	secret   []byte
	validity time.Duration
	clock    clock.Clock
}

func NewSigner(secret string, validity time.Duration, clk clock.Clock) *Signer {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Signer{secret: []byte(secret), validity: validity, clock: clk}
}

func (s *Signer) Validity() time.Duration {
	return s.validity
}

func (s *Signer) Mint(quotationID uuid.UUID, action string) (string, error) {
	if quotationID == uuid.Nil || !isAction(action) {
		return "", ErrMalformedPayload
	}
	now := s.clock.Now()
	return s.sign(Claims{
		QuotationID: quotationID.String(),
		Action:      action,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})
}

func (s *Signer) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign response token")
	}
	return signed, nil
}

// Verify checks the signature, then expiry, then the payload.
func (s *Signer) Verify(tokenString string) (Payload, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}

	if !isAction(claims.Action) {
		return Payload{}, ErrMalformedPayload
	}
	id, err := uuid.Parse(claims.QuotationID)
	if err != nil || id == uuid.Nil {
		return Payload{}, ErrMalformedPayload
	}

	return Payload{
		QuotationID: id,
		Action:      claims.Action,
		ExpiresAt:   claims.ExpiresAt.Time.UTC(),
	}, nil
}

func isAction(a string) bool {
	return a == ActionApprove || a == ActionDecline
}
