//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"permit-quotation-service/internal/infra"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/pgconv"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuotationReadQueries struct {
	mock.Mock
}

func (m *MockQuotationReadQueries) GetQuotationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Quotations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Quotations), args.Error(1)
}

func (m *MockQuotationReadQueries) ListPricedPermitRequests(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) ([]sqlc.ListPricedPermitRequestsRow, error) {
	args := m.Called(ctx, db, quotationID)
	return args.Get(0).([]sqlc.ListPricedPermitRequestsRow), args.Error(1)
}

func (m *MockQuotationReadQueries) GetProjectByQuotation(ctx context.Context, db sqlc.DBTX, quotationID uuid.UUID) (sqlc.Projects, error) {
	args := m.Called(ctx, db, quotationID)
	return args.Get(0).(sqlc.Projects), args.Error(1)
}

func (m *MockQuotationReadQueries) ListQuotationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationsFirstPageParams) ([]sqlc.Quotations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Quotations), args.Error(1)
}

func (m *MockQuotationReadQueries) ListQuotationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationsKeysetParams) ([]sqlc.Quotations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Quotations), args.Error(1)
}

func (m *MockQuotationReadQueries) ListQuotationsForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationsForExportParams) ([]sqlc.Quotations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Quotations), args.Error(1)
}

func quotationRow(id uuid.UUID) sqlc.Quotations {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return sqlc.Quotations{
		ID:                     id,
		FirstName:              "Maria",
		LastName:               "Santos",
		Email:                  "maria@example.com",
		PhoneNumber:            "09171234567",
		ServiceType:            "permit_acquisition",
		Description:            "Poultry farm expansion",
		Status:                 "pending",
		ExternalEstimateID:     pgconv.StringToPgtype("EST-1"),
		ExternalEstimateAmount: pgconv.DecimalToNumeric(decimal.RequireFromString("5000.00")),
		IsSynced:               true,
		SyncedAt:               pgconv.TimeToPgtype(now),
		CreatedAt:              pgconv.TimeToPgtype(now),
		UpdatedAt:              pgconv.TimeToPgtype(now),
	}
}

func TestQuotationReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("maps row", func(t *testing.T) {
		q := new(MockQuotationReadQueries)
		q.On("GetQuotationByID", mock.Anything, mock.Anything, id).Return(quotationRow(id), nil)

		view, err := NewQuotationReadStore(q, nil).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "Poultry farm expansion", view.Description)
		require.NotNil(t, view.ExternalEstimateAmount)
		assert.True(t, view.ExternalEstimateAmount.Equal(decimal.NewFromInt(5000)))
		assert.Nil(t, view.CompanyName)
		assert.Nil(t, view.ClientID)
		assert.NotNil(t, view.SyncedAt)
		q.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockQuotationReadQueries)
		q.On("GetQuotationByID", mock.Anything, mock.Anything, id).Return(sqlc.Quotations{}, pgx.ErrNoRows)

		view, err := NewQuotationReadStore(q, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestQuotationReadStore_ListPermitRequests(t *testing.T) {
	qid := uuid.New()
	ptID := uuid.New()
	rows := []sqlc.ListPricedPermitRequestsRow{
		{
			ID:           uuid.New(),
			QuotationID:  qid,
			PermitTypeID: pgconv.UUIDToPgtype(ptID),
			AgencyName:   pgconv.StringToPgtype("DENR"),
			PermitName:   pgconv.StringToPgtype("ECC"),
			Price:        pgconv.DecimalToNumeric(decimal.RequireFromString("5000.00")),
			TimeEstimate: pgconv.StringToPgtype("30 days"),
		},
		{
			ID:          uuid.New(),
			QuotationID: qid,
			CustomName:  pgconv.StringToPgtype("Barangay clearance"),
			Price:       pgtype.Numeric{},
		},
	}

	q := new(MockQuotationReadQueries)
	q.On("ListPricedPermitRequests", mock.Anything, mock.Anything, qid).Return(rows, nil)

	views, err := NewQuotationReadStore(q, nil).ListPermitRequests(context.Background(), qid)

	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "ECC", views[0].Name)
	assert.Equal(t, &ptID, views[0].PermitTypeID)
	require.NotNil(t, views[0].Price)
	assert.True(t, views[0].Price.Equal(decimal.NewFromInt(5000)))

	assert.Equal(t, "Barangay clearance", views[1].Name)
	assert.Nil(t, views[1].PermitTypeID)
	assert.Nil(t, views[1].Price)
	assert.Nil(t, views[1].AgencyName)
}

func TestQuotationReadStore_FindFirstPage_PassesFilters(t *testing.T) {
	status := "sent"
	q := new(MockQuotationReadQueries)
	q.On("ListQuotationsFirstPage", mock.Anything, mock.Anything, sqlc.ListQuotationsFirstPageParams{
		Status:      pgconv.StringToPgtype("sent"),
		ServiceType: pgtype.Text{},
		Limit:       21,
	}).Return([]sqlc.Quotations{quotationRow(uuid.New())}, nil)

	items, err := NewQuotationReadStore(q, nil).FindFirstPage(context.Background(), queries.QuotationFilters{Status: &status}, 21)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	q.AssertExpectations(t)
}

func TestQuotationReadStore_FindProject_NotFound(t *testing.T) {
	qid := uuid.New()
	q := new(MockQuotationReadQueries)
	q.On("GetProjectByQuotation", mock.Anything, mock.Anything, qid).Return(sqlc.Projects{}, pgx.ErrNoRows)

	_, err := NewQuotationReadStore(q, nil).FindProject(context.Background(), qid)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
