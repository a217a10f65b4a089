package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"permit-quotation-service/internal/domain/catalog"
	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/domain/user"
	"permit-quotation-service/internal/infra/repository"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn at ReadCommitted and retries serialization failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	quotationRepo     shared.QuotationRepository
	permitRequestRepo shared.PermitRequestRepository
	projectRepo       shared.ProjectRepository
	catalogRepo       shared.CatalogRepository
	userRepo          shared.UserRepository
	commandReads      shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Quotations() shared.QuotationRepository {
	if t.quotationRepo == nil {
		t.quotationRepo = repository.NewQuotationRepository(t.uow.q, t.dbtx)
	}
	return t.quotationRepo
}

func (t *pgTx) PermitRequests() shared.PermitRequestRepository {
	if t.permitRequestRepo == nil {
		t.permitRequestRepo = repository.NewPermitRequestRepository(t.uow.q, t.dbtx)
	}
	return t.permitRequestRepo
}

func (t *pgTx) Projects() shared.ProjectRepository {
	if t.projectRepo == nil {
		t.projectRepo = repository.NewProjectRepository(t.uow.q, t.dbtx)
	}
	return t.projectRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.uow.q, t.dbtx)
	}
	return t.catalogRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads runs the repository finders against either the pool or the
// surrounding transaction.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized finders
	quotations     *repository.QuotationRepository
	permitRequests *repository.PermitRequestRepository
	projects       *repository.ProjectRepository
	catalog        *repository.CatalogRepository
	users          *repository.UserRepository
}

func (r *commandReads) quotationRepo() *repository.QuotationRepository {
	if r.quotations == nil {
		r.quotations = repository.NewQuotationRepository(r.uow.q, r.dbtx)
	}
	return r.quotations
}

func (r *commandReads) permitRequestRepo() *repository.PermitRequestRepository {
	if r.permitRequests == nil {
		r.permitRequests = repository.NewPermitRequestRepository(r.uow.q, r.dbtx)
	}
	return r.permitRequests
}

func (r *commandReads) catalogRepo() *repository.CatalogRepository {
	if r.catalog == nil {
		r.catalog = repository.NewCatalogRepository(r.uow.q, r.dbtx)
	}
	return r.catalog
}

func (r *commandReads) QuotationByID(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	return r.quotationRepo().FindByID(ctx, id)
}

func (r *commandReads) QuotationForUpdate(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	return r.quotationRepo().FindByIDForUpdate(ctx, id)
}

func (r *commandReads) UnsyncedQuotationIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	return r.quotationRepo().ListUnsyncedIDs(ctx, limit)
}

func (r *commandReads) PermitRequestByID(ctx context.Context, id uuid.UUID) (*quotation.PermitRequest, error) {
	return r.permitRequestRepo().FindByID(ctx, id)
}

func (r *commandReads) PricedPermits(ctx context.Context, quotationID uuid.UUID) ([]quotation.PricedPermit, error) {
	return r.permitRequestRepo().ListPriced(ctx, quotationID)
}

func (r *commandReads) ProjectByQuotation(ctx context.Context, quotationID uuid.UUID) (*quotation.Project, error) {
	if r.projects == nil {
		r.projects = repository.NewProjectRepository(r.uow.q, r.dbtx)
	}
	return r.projects.FindByQuotation(ctx, quotationID)
}

func (r *commandReads) AgencyByID(ctx context.Context, id uuid.UUID) (*catalog.Agency, error) {
	return r.catalogRepo().FindAgencyByID(ctx, id)
}

func (r *commandReads) PermitTypeByID(ctx context.Context, id uuid.UUID) (*catalog.PermitType, error) {
	return r.catalogRepo().FindPermitTypeByID(ctx, id)
}

func (r *commandReads) PermitTypeByName(ctx context.Context, name string, agencyID *uuid.UUID) (*catalog.PermitType, error) {
	return r.catalogRepo().FindPermitTypeByName(ctx, name, agencyID)
}

func (r *commandReads) UserByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	if r.users == nil {
		r.users = repository.NewUserRepository(r.uow.q, r.dbtx)
	}
	return r.users.FindByEmail(ctx, email)
}
