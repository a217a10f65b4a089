//go:build unit

package errs_test

import (
	"testing"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWithField(t *testing.T) {
	sentinel := errs.Categorize("email is invalid", errs.ErrValidation)
	err := errs.Wrap(errs.WithField("email", sentinel), "create quotation")

	assert.Equal(t, "email", errs.Field(err))
	assert.True(t, errs.Is(err, sentinel))
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.False(t, errs.Is(err, errs.ErrNotFound))
	assert.Equal(t, "", errs.Field(sentinel))
	assert.NoError(t, errs.WithField("email", nil))
}
