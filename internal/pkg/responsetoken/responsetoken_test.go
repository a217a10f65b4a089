//go:build unit

package responsetoken

import (
	"testing"
	"time"

	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-response-links"

func newSigner(t *testing.T) (*Signer, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC))
	return NewSigner(secret, DefaultValidity, clk), clk
}

func TestMintVerify_RoundTrip(t *testing.T) {
	s, clk := newSigner(t)

	for _, action := range []string{ActionApprove, ActionDecline} {
		t.Run(action, func(t *testing.T) {
			id := uuid.New()
			token, err := s.Mint(id, action)
			require.NoError(t, err)

			got, err := s.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, id, got.QuotationID)
			assert.Equal(t, action, got.Action)
			assert.True(t, clk.Now().Add(DefaultValidity).Equal(got.ExpiresAt), "expires at %s", got.ExpiresAt)
			assert.Equal(t, time.UTC, got.ExpiresAt.Location())
		})
	}
}

func TestVerify_Expired(t *testing.T) {
	s, clk := newSigner(t)
	token, err := s.Mint(uuid.New(), ActionApprove)
	require.NoError(t, err)

	clk.Add(DefaultValidity + time.Second)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, errs.Is(err, errs.ErrExpiredToken))
}

func TestVerify_MintedWithPastExpiry(t *testing.T) {
	s, clk := newSigner(t)
	past := clk.Now().Add(-time.Hour)
	token, err := s.sign(Claims{
		QuotationID: uuid.NewString(),
		Action:      ActionApprove,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	})
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_Invalid(t *testing.T) {
	s, clk := newSigner(t)
	valid, err := s.Mint(uuid.New(), ActionDecline)
	require.NoError(t, err)

	other := NewSigner("another-secret", DefaultValidity, clk)
	foreign, err := other.Mint(uuid.New(), ActionApprove)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid[:len(valid)-2] + "xx"},
		{name: "wrong secret", token: foreign},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Verify(tc.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.True(t, errs.Is(err, errs.ErrInvalidToken))
		})
	}
}

func TestVerify_ExpiredBeatsMalformed(t *testing.T) {
	s, clk := newSigner(t)
	token, err := s.sign(Claims{
		QuotationID: uuid.NewString(),
		Action:      "maybe",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(clk.Now().Add(-time.Minute)),
		},
	})
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_MalformedPayload(t *testing.T) {
	s, clk := newSigner(t)
	exp := jwt.NewNumericDate(clk.Now().Add(time.Hour))

	tests := []struct {
		name   string
		claims Claims
	}{
		{
			name:   "unknown action",
			claims: Claims{QuotationID: uuid.NewString(), Action: "APPROVE"},
		},
		{
			name:   "bad quotation id",
			claims: Claims{QuotationID: "7", Action: ActionDecline},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.claims.RegisteredClaims = jwt.RegisteredClaims{Issuer: issuer, ExpiresAt: exp}
			token, err := s.sign(tc.claims)
			require.NoError(t, err)

			_, err = s.Verify(token)
			require.ErrorIs(t, err, ErrMalformedPayload)
			assert.True(t, errs.Is(err, errs.ErrInvalidToken))
		})
	}
}

func TestMint_RejectsUnknownAction(t *testing.T) {
	s, _ := newSigner(t)
	_, err := s.Mint(uuid.New(), "maybe")
	require.ErrorIs(t, err, ErrMalformedPayload)
}
