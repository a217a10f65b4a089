//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/queries"
	queriesmock "permit-quotation-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listItems(n int, start time.Time) []*queries.QuotationListItem {
	items := make([]*queries.QuotationListItem, n)
	for i := range items {
		items[i] = &queries.QuotationListItem{ID: uuid.New(), CreatedAt: start.Add(-time.Duration(i) * time.Minute)}
	}
	return items
}

func TestQuotationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("assembles permits and project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		permits := []*queries.PermitRequestView{{ID: uuid.New(), Name: "ECC"}}
		project := &queries.ProjectView{ProjectType: "poultry"}
		store.EXPECT().FindByID(ctx, id).Return(&queries.QuotationView{QuotationListItem: queries.QuotationListItem{ID: id}}, nil)
		store.EXPECT().ListPermitRequests(ctx, id).Return(permits, nil)
		store.EXPECT().FindProject(ctx, id).Return(project, nil)

		view, err := q.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, permits, view.PermitRequests)
		assert.Equal(t, project, view.Project)
	})

	t.Run("missing project and permits are empty, not errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		store.EXPECT().FindByID(ctx, id).Return(&queries.QuotationView{QuotationListItem: queries.QuotationListItem{ID: id}}, nil)
		store.EXPECT().ListPermitRequests(ctx, id).Return(nil, nil)
		store.EXPECT().FindProject(ctx, id).Return(nil, infra.NotFound("project not found"))

		view, err := q.GetByID(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, view.PermitRequests)
		assert.Empty(t, view.PermitRequests)
		assert.Nil(t, view.Project)
	})

	t.Run("not found maps to the query sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		store.EXPECT().FindByID(ctx, id).Return(nil, infra.NotFound("quotation not found"))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrQuotationNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("project read failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		dbErr := infra.WrapRepoErr("failed to find project", errors.New("conn reset"), infra.KindDBFailure)
		store.EXPECT().FindByID(ctx, id).Return(&queries.QuotationView{}, nil)
		store.EXPECT().ListPermitRequests(ctx, id).Return(nil, nil)
		store.EXPECT().FindProject(ctx, id).Return(nil, dbErr)

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestQuotationQueries_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("first page fetches one extra row to detect more", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		rows := listItems(3, now)
		store.EXPECT().FindFirstPage(ctx, queries.QuotationFilters{}, int32(3)).Return(rows, nil)

		items, next, err := q.List(ctx, queries.QuotationFilters{}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		at, lastID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, lastID)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		store.EXPECT().FindFirstPage(ctx, gomock.Any(), int32(queries.DefaultListLimit+1)).Return(listItems(1, now), nil)

		items, next, err := q.List(ctx, queries.QuotationFilters{}, &queries.Cursor{}, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("cursor resumes with keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(now, lastID)}
		status := "sent"
		filters := queries.QuotationFilters{Status: &status}
		store.EXPECT().FindKeyset(ctx, filters, gomock.Any(), lastID, int32(11)).
			DoAndReturn(func(_ context.Context, _ queries.QuotationFilters, at time.Time, _ uuid.UUID, _ int32) ([]*queries.QuotationListItem, error) {
				assert.True(t, now.Equal(at))
				return listItems(2, now.Add(-time.Hour)), nil
			})

		items, next, err := q.List(ctx, filters, cursor, 10)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		q := queries.NewQuotationQueries(store, nil)

		_, _, err := q.List(ctx, queries.QuotationFilters{}, &queries.Cursor{After: "%%%"}, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestQuotationQueries_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("writes capped rows through the sheet writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		sheet := queriesmock.NewMockQuotationSheetWriter(ctrl)
		q := queries.NewQuotationQueries(store, sheet)

		rows := listItems(2, time.Now())
		store.EXPECT().FindForExport(ctx, queries.QuotationFilters{}, int32(queries.MaxExportRows)).Return(rows, nil)
		sheet.EXPECT().WriteQuotations(gomock.Any(), rows).DoAndReturn(func(w io.Writer, _ []*queries.QuotationListItem) error {
			_, err := w.Write([]byte("xlsx"))
			return err
		})

		var buf bytes.Buffer
		require.NoError(t, q.Export(ctx, queries.QuotationFilters{}, &buf))
		assert.Equal(t, "xlsx", buf.String())
	})

	t.Run("writer failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		sheet := queriesmock.NewMockQuotationSheetWriter(ctrl)
		q := queries.NewQuotationQueries(store, sheet)

		writeErr := errors.New("disk full")
		store.EXPECT().FindForExport(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		sheet.EXPECT().WriteQuotations(gomock.Any(), gomock.Any()).Return(writeErr)

		err := q.Export(ctx, queries.QuotationFilters{}, io.Discard)
		assert.ErrorIs(t, err, writeErr)
	})
}

func TestNewQuotationFilters(t *testing.T) {
	f, err := queries.NewQuotationFilters("", "")
	require.NoError(t, err)
	assert.Nil(t, f.Status)
	assert.Nil(t, f.ServiceType)

	f, err = queries.NewQuotationFilters("approved", "monitoring")
	require.NoError(t, err)
	assert.Equal(t, "approved", *f.Status)
	assert.Equal(t, "monitoring", *f.ServiceType)

	_, err = queries.NewQuotationFilters("archived", "")
	assert.Equal(t, "status", errs.Field(err))
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = queries.NewQuotationFilters("", "consulting")
	assert.Equal(t, "service_type", errs.Field(err))
}
