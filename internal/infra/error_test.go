//go:build unit

package infra

import (
	"testing"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classifies(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []RepositoryErrorKind
		wantKind RepositoryErrorKind
		category error
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: KindDuplicateKey, category: errs.ErrConflict},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: KindForeignKeyViolated, category: errs.ErrConflict},
		{name: "explicit not found", err: pgx.ErrNoRows, kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound, category: errs.ErrNotFound},
		{name: "anything else", err: assert.AnError, wantKind: KindDBFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, IsKind(err, tc.wantKind))
			assert.ErrorIs(t, err, tc.err)
			if tc.category != nil {
				assert.True(t, errs.Is(err, tc.category))
			} else {
				assert.False(t, errs.Is(err, errs.ErrNotFound))
				assert.False(t, errs.Is(err, errs.ErrConflict))
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	err := errs.Wrap(NotFound("quotation not found"), "load")
	assert.True(t, IsKind(err, KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
