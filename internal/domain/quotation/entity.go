package quotation

import (
	"strings"
	"time"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quotation is a client's service request and the root of its permit
// requests and project.
type Quotation struct {
	id                     uuid.UUID
	clientID               *uuid.UUID
	contact                Contact
	serviceType            ServiceType
	description            string
	status                 Status
	externalEstimateID     *string
	externalEstimateAmount *decimal.Decimal
	isSynced               bool
	syncedAt               *time.Time
	createdAt              time.Time
	updatedAt              time.Time
	respondedAt            *time.Time
}

func NewQuotation(contact Contact, serviceType ServiceType, description string, now time.Time) (*Quotation, error) {
	if _, err := ParseServiceType(serviceType.String()); err != nil {
		return nil, err
	}
	return &Quotation{
		id:          uuid.New(),
		contact:     contact,
		serviceType: serviceType,
		description: strings.TrimSpace(description),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type Snapshot struct {
	ID                     uuid.UUID
	ClientID               *uuid.UUID
	Contact                Contact
	ServiceType            ServiceType
	Description            string
	Status                 Status
	ExternalEstimateID     *string
	ExternalEstimateAmount *decimal.Decimal
	IsSynced               bool
	SyncedAt               *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
	RespondedAt            *time.Time
}

func ReconstructQuotation(s Snapshot) *Quotation {
	return &Quotation{
		id:                     s.ID,
		clientID:               s.ClientID,
		contact:                s.Contact,
		serviceType:            s.ServiceType,
		description:            s.Description,
		status:                 s.Status,
		externalEstimateID:     s.ExternalEstimateID,
		externalEstimateAmount: s.ExternalEstimateAmount,
		isSynced:               s.IsSynced,
		syncedAt:               s.SyncedAt,
		createdAt:              s.CreatedAt,
		updatedAt:              s.UpdatedAt,
		respondedAt:            s.RespondedAt,
	}
}

func (q *Quotation) ID() uuid.UUID                            { return q.id }
func (q *Quotation) ClientID() *uuid.UUID                     { return q.clientID }
func (q *Quotation) Contact() Contact                         { return q.contact }
func (q *Quotation) ServiceType() ServiceType                 { return q.serviceType }
func (q *Quotation) Description() string                      { return q.description }
func (q *Quotation) Status() Status                           { return q.status }
func (q *Quotation) ExternalEstimateID() *string              { return q.externalEstimateID }
func (q *Quotation) ExternalEstimateAmount() *decimal.Decimal { return q.externalEstimateAmount }
func (q *Quotation) IsSynced() bool                           { return q.isSynced }
func (q *Quotation) SyncedAt() *time.Time                     { return q.syncedAt }
func (q *Quotation) CreatedAt() time.Time                     { return q.createdAt }
func (q *Quotation) UpdatedAt() time.Time                     { return q.updatedAt }
func (q *Quotation) RespondedAt() *time.Time                  { return q.respondedAt }
func (q *Quotation) HasEstimate() bool                        { return q.externalEstimateID != nil }

// CheckSendable rejects quotations that were already sent or answered.
func (q *Quotation) CheckSendable() error {
	switch {
	case q.status == StatusSent:
		return ErrAlreadySent
	case q.status.IsAnswered():
		return ErrAlreadyAnswered
	}
	return nil
}

func (q *Quotation) RequireEstimate() error {
	if !q.HasEstimate() {
		return ErrEstimateRequired
	}
	return nil
}

// MarkSent must only be called after the client notification went out.
func (q *Quotation) MarkSent(now time.Time) error {
	if err := q.CheckSendable(); err != nil {
		return err
	}
	q.status = StatusSent
	q.updatedAt = now
	return nil
}

// RecordResponse applies a client answer. Repeating the recorded answer is a
// no-op and reports changed=false; the opposite answer is a conflict.
func (q *Quotation) RecordResponse(action Action, now time.Time) (changed bool, err error) {
	if _, err := ParseAction(action.String()); err != nil {
		return false, err
	}
	switch {
	case q.status == StatusSent:
		q.status = action.Outcome()
		q.respondedAt = &now
		q.updatedAt = now
		return true, nil
	case q.status == action.Outcome():
		return false, nil
	case q.status.IsAnswered():
		return false, ErrAlreadyAnswered
	default:
		return false, ErrNotAwaitingReply
	}
}

// ApplyEstimate records a successful mirror to the estimate provider.
func (q *Quotation) ApplyEstimate(estimateID string, amount decimal.Decimal, now time.Time) {
	id := estimateID
	amt := amount
	q.externalEstimateID = &id
	q.externalEstimateAmount = &amt
	q.isSynced = true
	q.syncedAt = &now
}

// ApplyStaleEstimate handles a mirror built from an older state than the
// stored one. The remote reference is kept only when none is known yet, and
// the quotation stays unsynced so the next refresh pushes the current state.
func (q *Quotation) ApplyStaleEstimate(estimateID string, amount decimal.Decimal) {
	if q.externalEstimateID == nil {
		id := estimateID
		amt := amount
		q.externalEstimateID = &id
		q.externalEstimateAmount = &amt
	}
	q.isSynced = false
}

func (q *Quotation) MarkUnsynced(now time.Time) {
	q.isSynced = false
	q.updatedAt = now
}

// ClearEstimate forgets the remote mirror after it was deleted remotely.
func (q *Quotation) ClearEstimate(now time.Time) {
	q.externalEstimateID = nil
	q.externalEstimateAmount = nil
	q.isSynced = false
	q.syncedAt = nil
	q.updatedAt = now
}

type Patch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	CompanyName *string // empty clears
	Status      *Status
	Description *string
}

// ApplyPatch overwrites the given fields. Status is a direct staff override
// and bypasses the lifecycle rules.
func (q *Quotation) ApplyPatch(p Patch, now time.Time) error {
	c := q.contact
	contact, err := NewContact(
		pick(p.FirstName, c.firstName),
		pick(p.LastName, c.lastName),
		pick(p.Email, c.email),
		pick(p.Phone, c.phone),
		pickPtr(p.CompanyName, c.companyName),
	)
	if err != nil {
		return err
	}

	if p.Status != nil {
		if !p.Status.IsValid() {
			return errs.WithField("status", ErrInvalidStatus)
		}
		q.status = *p.Status
	}
	q.contact = contact
	if p.Description != nil {
		q.description = strings.TrimSpace(*p.Description)
	}
	q.updatedAt = now
	return nil
}

func pick(v *string, cur string) string {
	if v != nil {
		return *v
	}
	return cur
}

func pickPtr(v *string, cur *string) *string {
	if v != nil {
		return v
	}
	return cur
}
