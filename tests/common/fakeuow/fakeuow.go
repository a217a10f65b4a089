//go:build unit

// Package fakeuow is an in-memory shared.UnitOfWork for use case tests.
// Within stages every write and discards them when fn fails.
package fakeuow

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"permit-quotation-service/internal/domain/catalog"
	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/domain/user"
	"permit-quotation-service/internal/infra"
	sqlc "permit-quotation-service/internal/infra/sqlc/generated"
	"permit-quotation-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	quotations  map[uuid.UUID]quotation.Snapshot
	permits     []*quotation.PermitRequest
	projects    map[uuid.UUID]*quotation.Project
	agencies    map[uuid.UUID]*catalog.Agency
	permitTypes map[uuid.UUID]*catalog.PermitType
	users       map[uuid.UUID]*user.User

	// syncAttempts holds the last mirror attempt per quotation.
	syncAttempts map[uuid.UUID]time.Time
}

func (s *state) clone() *state {
	c := &state{
		quotations:  make(map[uuid.UUID]quotation.Snapshot, len(s.quotations)),
		permits:     slices.Clone(s.permits),
		projects:    make(map[uuid.UUID]*quotation.Project, len(s.projects)),
		agencies:    make(map[uuid.UUID]*catalog.Agency, len(s.agencies)),
		permitTypes: make(map[uuid.UUID]*catalog.PermitType, len(s.permitTypes)),
		users:       make(map[uuid.UUID]*user.User, len(s.users)),

		syncAttempts: make(map[uuid.UUID]time.Time, len(s.syncAttempts)),
	}
	for k, v := range s.quotations {
		c.quotations[k] = v
	}
	for k, v := range s.projects {
		c.projects[k] = v
	}
	for k, v := range s.agencies {
		c.agencies[k] = v
	}
	for k, v := range s.permitTypes {
		c.permitTypes[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.syncAttempts {
		c.syncAttempts[k] = v
	}
	return c
}

type UoW struct {
	mu    sync.Mutex
	state *state

	// FailNextWithin makes the next Within call fail with this error
	// before fn runs.
	FailNextWithin error
	// Commits counts successful Within calls.
	Commits int
	// LastLogins records users whose last login was touched.
	LastLogins []uuid.UUID
}

func New() *UoW {
	return &UoW{state: (&state{}).clone()}
}

var _ shared.UnitOfWork = (*UoW)(nil)

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	if err := u.FailNextWithin; err != nil {
		u.FailNextWithin = nil
		u.mu.Unlock()
		return err
	}
	staged := u.state.clone()
	u.mu.Unlock()

	if err := fn(ctx, &tx{uow: u, s: staged}); err != nil {
		return err
	}

	u.mu.Lock()
	u.state = staged
	u.Commits++
	u.mu.Unlock()
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) CommandReads() shared.CommandReads {
	u.mu.Lock()
	defer u.mu.Unlock()
	return reads{s: u.state}
}

// Seeding helpers write straight to the committed state.

func (u *UoW) SeedQuotation(q *quotation.Quotation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.quotations[q.ID()] = snapshot(q)
}

func (u *UoW) SeedPermitRequest(pr *quotation.PermitRequest) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.permits = append(u.state.permits, pr)
}

func (u *UoW) SeedAgency(a *catalog.Agency) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.agencies[a.ID()] = a
}

func (u *UoW) SeedPermitType(pt *catalog.PermitType) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.permitTypes[pt.ID()] = pt
}

func (u *UoW) SeedUser(usr *user.User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.users[usr.ID()] = usr
}

// Inspection helpers read the committed state.

func (u *UoW) Quotation(id uuid.UUID) (*quotation.Quotation, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.state.quotations[id]
	if !ok {
		return nil, false
	}
	return quotation.ReconstructQuotation(s), true
}

// SyncAttempt returns the last recorded mirror attempt of a quotation.
func (u *UoW) SyncAttempt(id uuid.UUID) (time.Time, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	at, ok := u.state.syncAttempts[id]
	return at, ok
}

func (u *UoW) QuotationCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.quotations)
}

func (u *UoW) PermitRequests(quotationID uuid.UUID) []*quotation.PermitRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	return reads{s: u.state}.requestsFor(quotationID)
}

func (u *UoW) Project(quotationID uuid.UUID) (*quotation.Project, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.state.projects[quotationID]
	return p, ok
}

func (u *UoW) PermitType(id uuid.UUID) (*catalog.PermitType, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	pt, ok := u.state.permitTypes[id]
	return pt, ok
}

func (u *UoW) Agency(id uuid.UUID) (*catalog.Agency, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	a, ok := u.state.agencies[id]
	return a, ok
}

func snapshot(q *quotation.Quotation) quotation.Snapshot {
	return quotation.Snapshot{
		ID:                     q.ID(),
		ClientID:               q.ClientID(),
		Contact:                q.Contact(),
		ServiceType:            q.ServiceType(),
		Description:            q.Description(),
		Status:                 q.Status(),
		ExternalEstimateID:     q.ExternalEstimateID(),
		ExternalEstimateAmount: q.ExternalEstimateAmount(),
		IsSynced:               q.IsSynced(),
		SyncedAt:               q.SyncedAt(),
		CreatedAt:              q.CreatedAt(),
		UpdatedAt:              q.UpdatedAt(),
		RespondedAt:            q.RespondedAt(),
	}
}

type tx struct {
	uow *UoW
	s   *state
}

func (t *tx) Quotations() shared.QuotationRepository         { return quotationRepo{s: t.s} }
func (t *tx) PermitRequests() shared.PermitRequestRepository { return permitRepo{s: t.s} }
func (t *tx) Projects() shared.ProjectRepository             { return projectRepo{s: t.s} }
func (t *tx) Catalog() shared.CatalogRepository              { return catalogRepo{s: t.s} }
func (t *tx) Users() shared.UserRepository                   { return userRepo{uow: t.uow, s: t.s} }
func (t *tx) Reads() shared.CommandReads                     { return reads{s: t.s} }
func (t *tx) DB() sqlc.DBTX                                  { return nil }

type reads struct {
	s *state
}

func (r reads) QuotationByID(_ context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	s, ok := r.s.quotations[id]
	if !ok {
		return nil, infra.NotFound("quotation not found")
	}
	return quotation.ReconstructQuotation(s), nil
}

func (r reads) QuotationForUpdate(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	return r.QuotationByID(ctx, id)
}

func (r reads) PermitRequestByID(_ context.Context, id uuid.UUID) (*quotation.PermitRequest, error) {
	for _, pr := range r.s.permits {
		if pr.ID() == id {
			return pr, nil
		}
	}
	return nil, infra.NotFound("permit request not found")
}

func (r reads) requestsFor(quotationID uuid.UUID) []*quotation.PermitRequest {
	var out []*quotation.PermitRequest
	for _, pr := range r.s.permits {
		if pr.QuotationID() == quotationID {
			out = append(out, pr)
		}
	}
	return out
}

func (r reads) PricedPermits(_ context.Context, quotationID uuid.UUID) ([]quotation.PricedPermit, error) {
	requests := r.requestsFor(quotationID)
	out := make([]quotation.PricedPermit, 0, len(requests))
	for _, pr := range requests {
		pp := quotation.PricedPermit{Request: pr}
		if id := pr.PermitTypeID(); id != nil {
			pp.PermitType = r.s.permitTypes[*id]
		}
		out = append(out, pp)
	}
	return out, nil
}

func (r reads) ProjectByQuotation(_ context.Context, quotationID uuid.UUID) (*quotation.Project, error) {
	p, ok := r.s.projects[quotationID]
	if !ok {
		return nil, infra.NotFound("project not found")
	}
	return quotation.ReconstructProject(p.QuotationID(), p.ProjectType(), p.LotArea(), p.AnnualCapacity(), p.Description(), p.CreatedAt(), p.UpdatedAt()), nil
}

func (r reads) UnsyncedQuotationIDs(_ context.Context, limit int) ([]uuid.UUID, error) {
	var pending []quotation.Snapshot
	for _, q := range r.s.quotations {
		if !q.IsSynced && (q.Status == quotation.StatusPending || q.Status == quotation.StatusSent) {
			pending = append(pending, q)
		}
	}
	// never attempted first, then oldest attempt, then oldest edit
	sort.Slice(pending, func(i, j int) bool {
		ai, aj := r.s.syncAttempts[pending[i].ID], r.s.syncAttempts[pending[j].ID]
		if !ai.Equal(aj) {
			return ai.Before(aj)
		}
		if !pending[i].UpdatedAt.Equal(pending[j].UpdatedAt) {
			return pending[i].UpdatedAt.Before(pending[j].UpdatedAt)
		}
		return pending[i].ID.String() < pending[j].ID.String()
	})

	ids := make([]uuid.UUID, 0, len(pending))
	for _, q := range pending {
		if len(ids) == limit {
			break
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}

func (r reads) AgencyByID(_ context.Context, id uuid.UUID) (*catalog.Agency, error) {
	a, ok := r.s.agencies[id]
	if !ok {
		return nil, infra.NotFound("agency not found")
	}
	return a, nil
}

func (r reads) PermitTypeByID(_ context.Context, id uuid.UUID) (*catalog.PermitType, error) {
	pt, ok := r.s.permitTypes[id]
	if !ok {
		return nil, infra.NotFound("permit type not found")
	}
	return copyPermitType(pt), nil
}

func (r reads) PermitTypeByName(_ context.Context, name string, agencyID *uuid.UUID) (*catalog.PermitType, error) {
	var best *catalog.PermitType
	bestAgency := ""
	for _, pt := range r.s.permitTypes {
		if pt.Name() != name {
			continue
		}
		if agencyID != nil && pt.AgencyID() != *agencyID {
			continue
		}
		agencyName := ""
		if a, ok := r.s.agencies[pt.AgencyID()]; ok {
			agencyName = a.Name()
		}
		if best == nil || agencyName < bestAgency {
			best, bestAgency = pt, agencyName
		}
	}
	if best == nil {
		return nil, infra.NotFound("permit type not found")
	}
	return copyPermitType(best), nil
}

func (r reads) UserByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.s.users {
		if u.Email().Value() == email.Value() {
			return u, nil
		}
	}
	return nil, infra.NotFound("user not found")
}

func copyPermitType(pt *catalog.PermitType) *catalog.PermitType {
	return catalog.ReconstructPermitType(pt.ID(), pt.AgencyID(), pt.Name(), pt.Description(), pt.Price(), pt.TimeEstimate(), pt.ExternalItemRef(), pt.CreatedAt(), pt.UpdatedAt())
}

type quotationRepo struct {
	s *state
}

func (r quotationRepo) Create(_ context.Context, _ sqlc.DBTX, q *quotation.Quotation) error {
	if _, ok := r.s.quotations[q.ID()]; ok {
		return infra.WrapRepoErr("quotation exists", nil, infra.KindDuplicateKey)
	}
	r.s.quotations[q.ID()] = snapshot(q)
	return nil
}

func (r quotationRepo) UpdateDetails(_ context.Context, _ sqlc.DBTX, q *quotation.Quotation) error {
	cur, ok := r.s.quotations[q.ID()]
	if !ok {
		return infra.NotFound("quotation not found")
	}
	next := snapshot(q)
	next.ExternalEstimateID = cur.ExternalEstimateID
	next.ExternalEstimateAmount = cur.ExternalEstimateAmount
	next.SyncedAt = cur.SyncedAt
	next.RespondedAt = cur.RespondedAt
	r.s.quotations[q.ID()] = next
	return nil
}

func (r quotationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, q *quotation.Quotation) error {
	cur, ok := r.s.quotations[q.ID()]
	if !ok {
		return infra.NotFound("quotation not found")
	}
	cur.Status = q.Status()
	cur.RespondedAt = q.RespondedAt()
	cur.UpdatedAt = q.UpdatedAt()
	r.s.quotations[q.ID()] = cur
	return nil
}

func (r quotationRepo) SaveSync(_ context.Context, _ sqlc.DBTX, q *quotation.Quotation, attemptedAt time.Time) error {
	cur, ok := r.s.quotations[q.ID()]
	if !ok {
		return infra.NotFound("quotation not found")
	}
	cur.ExternalEstimateID = q.ExternalEstimateID()
	cur.ExternalEstimateAmount = q.ExternalEstimateAmount()
	cur.IsSynced = q.IsSynced()
	cur.SyncedAt = q.SyncedAt()
	r.s.quotations[q.ID()] = cur
	r.s.syncAttempts[q.ID()] = attemptedAt
	return nil
}

func (r quotationRepo) MarkSyncAttempted(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	if _, ok := r.s.quotations[id]; !ok {
		return infra.NotFound("quotation not found")
	}
	r.s.syncAttempts[id] = at
	return nil
}

func (r quotationRepo) MarkUnsynced(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	cur, ok := r.s.quotations[id]
	if !ok {
		return infra.NotFound("quotation not found")
	}
	cur.IsSynced = false
	cur.UpdatedAt = at
	r.s.quotations[id] = cur
	return nil
}

func (r quotationRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.quotations[id]; !ok {
		return infra.NotFound("quotation not found")
	}
	delete(r.s.quotations, id)
	delete(r.s.projects, id)
	r.s.permits = slices.DeleteFunc(r.s.permits, func(pr *quotation.PermitRequest) bool {
		return pr.QuotationID() == id
	})
	return nil
}

type permitRepo struct {
	s *state
}

func (r permitRepo) Create(_ context.Context, _ sqlc.DBTX, pr *quotation.PermitRequest) error {
	if _, ok := r.s.quotations[pr.QuotationID()]; !ok {
		return infra.WrapRepoErr("quotation missing", nil, infra.KindForeignKeyViolated)
	}
	if id := pr.PermitTypeID(); id != nil {
		if _, ok := r.s.permitTypes[*id]; !ok {
			return infra.WrapRepoErr("permit type missing", nil, infra.KindForeignKeyViolated)
		}
	}
	r.s.permits = append(r.s.permits, pr)
	return nil
}

func (r permitRepo) Delete(_ context.Context, _ sqlc.DBTX, quotationID, id uuid.UUID) error {
	n := len(r.s.permits)
	r.s.permits = slices.DeleteFunc(r.s.permits, func(pr *quotation.PermitRequest) bool {
		return pr.ID() == id && pr.QuotationID() == quotationID
	})
	if len(r.s.permits) == n {
		return infra.NotFound("permit request not found")
	}
	return nil
}

func (r permitRepo) DeleteAllForQuotation(_ context.Context, _ sqlc.DBTX, quotationID uuid.UUID) error {
	r.s.permits = slices.DeleteFunc(r.s.permits, func(pr *quotation.PermitRequest) bool {
		return pr.QuotationID() == quotationID
	})
	return nil
}

type projectRepo struct {
	s *state
}

func (r projectRepo) Upsert(_ context.Context, _ sqlc.DBTX, p *quotation.Project) error {
	r.s.projects[p.QuotationID()] = p
	return nil
}

type catalogRepo struct {
	s *state
}

func (r catalogRepo) CreateAgency(_ context.Context, _ sqlc.DBTX, a *catalog.Agency) error {
	for _, existing := range r.s.agencies {
		if existing.Name() == a.Name() {
			return infra.WrapRepoErr("agency name taken", nil, infra.KindDuplicateKey)
		}
	}
	r.s.agencies[a.ID()] = a
	return nil
}

func (r catalogRepo) DeleteAgency(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.agencies[id]; !ok {
		return infra.NotFound("agency not found")
	}
	for ptID, pt := range r.s.permitTypes {
		if pt.AgencyID() == id && r.referenced(ptID) {
			return infra.WrapRepoErr("agency in use", nil, infra.KindForeignKeyViolated)
		}
	}
	for ptID, pt := range r.s.permitTypes {
		if pt.AgencyID() == id {
			delete(r.s.permitTypes, ptID)
		}
	}
	delete(r.s.agencies, id)
	return nil
}

func (r catalogRepo) CreatePermitType(_ context.Context, _ sqlc.DBTX, pt *catalog.PermitType) error {
	for _, existing := range r.s.permitTypes {
		if existing.AgencyID() == pt.AgencyID() && existing.Name() == pt.Name() {
			return infra.WrapRepoErr("permit type name taken", nil, infra.KindDuplicateKey)
		}
	}
	r.s.permitTypes[pt.ID()] = pt
	return nil
}

func (r catalogRepo) UpdatePermitType(_ context.Context, _ sqlc.DBTX, pt *catalog.PermitType) error {
	if _, ok := r.s.permitTypes[pt.ID()]; !ok {
		return infra.NotFound("permit type not found")
	}
	for id, existing := range r.s.permitTypes {
		if id != pt.ID() && existing.AgencyID() == pt.AgencyID() && existing.Name() == pt.Name() {
			return infra.WrapRepoErr("permit type name taken", nil, infra.KindDuplicateKey)
		}
	}
	r.s.permitTypes[pt.ID()] = pt
	return nil
}

func (r catalogRepo) DeletePermitType(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.permitTypes[id]; !ok {
		return infra.NotFound("permit type not found")
	}
	if r.referenced(id) {
		return infra.WrapRepoErr("permit type in use", nil, infra.KindForeignKeyViolated)
	}
	delete(r.s.permitTypes, id)
	return nil
}

func (r catalogRepo) referenced(permitTypeID uuid.UUID) bool {
	for _, pr := range r.s.permits {
		if id := pr.PermitTypeID(); id != nil && *id == permitTypeID {
			return true
		}
	}
	return false
}

type userRepo struct {
	uow *UoW
	s   *state
}

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	r.s.users[u.ID()] = u
	return u.ID(), nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	if _, ok := r.s.users[userID]; !ok {
		return infra.NotFound("user not found")
	}
	r.uow.LastLogins = append(r.uow.LastLogins, userID)
	return nil
}
