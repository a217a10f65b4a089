package shared

import (
	"context"
	"time"

	"permit-quotation-service/internal/domain/catalog"
	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/domain/user"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Quotations() QuotationRepository
	PermitRequests() PermitRequestRepository
	Projects() ProjectRepository
	Catalog() CatalogRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads load aggregates for the write side. Missing rows surface as
// infra.KindNotFound.
type CommandReads interface {
	QuotationByID(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error)
	// QuotationForUpdate locks the row until the surrounding transaction ends.
	QuotationForUpdate(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error)
	PermitRequestByID(ctx context.Context, id uuid.UUID) (*quotation.PermitRequest, error)
	PricedPermits(ctx context.Context, quotationID uuid.UUID) ([]quotation.PricedPermit, error)
	ProjectByQuotation(ctx context.Context, quotationID uuid.UUID) (*quotation.Project, error)
	// UnsyncedQuotationIDs lists unanswered unsynced quotations, least
	// recently attempted first.
	UnsyncedQuotationIDs(ctx context.Context, limit int) ([]uuid.UUID, error)

	AgencyByID(ctx context.Context, id uuid.UUID) (*catalog.Agency, error)
	PermitTypeByID(ctx context.Context, id uuid.UUID) (*catalog.PermitType, error)
	// PermitTypeByName matches exactly. A nil agencyID searches every agency
	// and returns the match under the alphabetically first agency.
	PermitTypeByName(ctx context.Context, name string, agencyID *uuid.UUID) (*catalog.PermitType, error)

	UserByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type QuotationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation) error
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation) error
	SaveSync(ctx context.Context, tx sqlc.DBTX, q *quotation.Quotation, attemptedAt time.Time) error
	MarkSyncAttempted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkUnsynced(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type PermitRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, pr *quotation.PermitRequest) error
	Delete(ctx context.Context, tx sqlc.DBTX, quotationID, id uuid.UUID) error
	DeleteAllForQuotation(ctx context.Context, tx sqlc.DBTX, quotationID uuid.UUID) error
}

type ProjectRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, p *quotation.Project) error
}

type CatalogRepository interface {
	CreateAgency(ctx context.Context, tx sqlc.DBTX, a *catalog.Agency) error
	DeleteAgency(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CreatePermitType(ctx context.Context, tx sqlc.DBTX, pt *catalog.PermitType) error
	UpdatePermitType(ctx context.Context, tx sqlc.DBTX, pt *catalog.PermitType) error
	DeletePermitType(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
