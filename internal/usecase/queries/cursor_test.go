//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 7, 1, 10, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotTS, gotID, err := DecodeAfterCursor(EncodeAfterCursor(ts, id))
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	for name, cursor := range map[string]string{
		"not base64":    "%%%",
		"no version":    enc("123-" + uuid.NewString()),
		"bad timestamp": enc("v1:abc-" + uuid.NewString()),
		"bad uuid":      enc("v1:123-nope"),
		"no separator":  enc("v1:123"),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(cursor)
			require.ErrorIs(t, err, ErrInvalidCursor)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-5))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, MaxListLimit, ValidateLimit(1000))
}
