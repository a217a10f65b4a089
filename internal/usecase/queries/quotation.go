package queries

//go:generate mockgen -source=quotation.go -destination=../../../tests/mock/queries/quotation_mock.go -package=queriesmock

import (
	"context"
	"io"
	"time"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxExportRows = 5000

var ErrQuotationNotFound = errs.Categorize("quotation not found", errs.ErrNotFound)

type QuotationListItem struct {
	ID                     uuid.UUID        `json:"id"`
	FirstName              string           `json:"first_name"`
	LastName               string           `json:"last_name"`
	Email                  string           `json:"email"`
	PhoneNumber            string           `json:"phone_number"`
	CompanyName            *string          `json:"company_name,omitempty"`
	ServiceType            string           `json:"service_type"`
	Status                 string           `json:"status"`
	ExternalEstimateID     *string          `json:"external_estimate_id,omitempty"`
	ExternalEstimateAmount *decimal.Decimal `json:"external_estimate_amount,omitempty"`
	IsSynced               bool             `json:"is_synced"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
	RespondedAt            *time.Time       `json:"responded_at,omitempty"`
}

type PermitRequestView struct {
	ID           uuid.UUID        `json:"id"`
	PermitTypeID *uuid.UUID       `json:"permit_type_id,omitempty"`
	CustomName   *string          `json:"custom_name,omitempty"`
	Name         string           `json:"name"`
	AgencyName   *string          `json:"agency_name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	TimeEstimate *string          `json:"time_estimate,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type ProjectView struct {
	ProjectType        string    `json:"project_type"`
	LotArea            *string   `json:"lot_area,omitempty"`
	AnnualCapacity     *string   `json:"annual_capacity,omitempty"`
	ProjectDescription string    `json:"project_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type QuotationView struct {
	QuotationListItem
	ClientID       *uuid.UUID           `json:"client_id,omitempty"`
	Description    string               `json:"description"`
	SyncedAt       *time.Time           `json:"synced_at,omitempty"`
	PermitRequests []*PermitRequestView `json:"permit_requests"`
	Project        *ProjectView         `json:"project,omitempty"`
}

type QuotationFilters struct {
	Status      *string
	ServiceType *string
}

// NewQuotationFilters validates optional list filters; blank means unset.
func NewQuotationFilters(status, serviceType string) (QuotationFilters, error) {
	var f QuotationFilters
	if status != "" {
		st, err := quotation.ParseStatus(status)
		if err != nil {
			return QuotationFilters{}, errs.WithField("status", err)
		}
		s := st.String()
		f.Status = &s
	}
	if serviceType != "" {
		st, err := quotation.ParseServiceType(serviceType)
		if err != nil {
			return QuotationFilters{}, errs.WithField("service_type", err)
		}
		s := st.String()
		f.ServiceType = &s
	}
	return f, nil
}

type QuotationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuotationView, error)
	ListPermitRequests(ctx context.Context, quotationID uuid.UUID) ([]*PermitRequestView, error)
	FindProject(ctx context.Context, quotationID uuid.UUID) (*ProjectView, error)
	FindFirstPage(ctx context.Context, filters QuotationFilters, limit int32) ([]*QuotationListItem, error)
	FindKeyset(ctx context.Context, filters QuotationFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuotationListItem, error)
	FindForExport(ctx context.Context, filters QuotationFilters, limit int32) ([]*QuotationListItem, error)
}

// QuotationSheetWriter renders quotation rows as a spreadsheet.
type QuotationSheetWriter interface {
	WriteQuotations(w io.Writer, rows []*QuotationListItem) error
}

type QuotationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*QuotationView, error)
	List(ctx context.Context, filters QuotationFilters, cursor *Cursor, limit int) ([]*QuotationListItem, *Cursor, error)
	Export(ctx context.Context, filters QuotationFilters, w io.Writer) error
}

type quotationQueriesImpl struct {
	readStore QuotationReadStore
	sheet     QuotationSheetWriter
}

func NewQuotationQueries(readStore QuotationReadStore, sheet QuotationSheetWriter) QuotationQueries {
	return &quotationQueriesImpl{readStore: readStore, sheet: sheet}
}

func (q *quotationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*QuotationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, err
	}

	permits, err := q.readStore.ListPermitRequests(ctx, id)
	if err != nil {
		return nil, err
	}
	if permits == nil {
		permits = []*PermitRequestView{}
	}
	view.PermitRequests = permits

	project, err := q.readStore.FindProject(ctx, id)
	switch {
	case err == nil:
		view.Project = project
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return nil, err
	}
	return view, nil
}

func (q *quotationQueriesImpl) List(ctx context.Context, filters QuotationFilters, cursor *Cursor, limit int) ([]*QuotationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*QuotationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.readStore.FindKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *quotationQueriesImpl) Export(ctx context.Context, filters QuotationFilters, w io.Writer) error {
	rows, err := q.readStore.FindForExport(ctx, filters, MaxExportRows)
	if err != nil {
		return err
	}
	if err := q.sheet.WriteQuotations(w, rows); err != nil {
		return errs.Wrap(err, "failed to write quotation export")
	}
	return nil
}
