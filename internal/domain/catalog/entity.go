package catalog

import (
	"strings"
	"time"

	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

type Agency struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewAgency(name string, now time.Time) (*Agency, error) {
	n, err := normalizeName(name, ErrInvalidAgencyName)
	if err != nil {
		return nil, errs.WithField("name", err)
	}
	return &Agency{
		id:        uuid.New(),
		name:      n,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAgency(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Agency {
	return &Agency{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (a *Agency) ID() uuid.UUID        { return a.id }
func (a *Agency) Name() string         { return a.name }
func (a *Agency) CreatedAt() time.Time { return a.createdAt }
func (a *Agency) UpdatedAt() time.Time { return a.updatedAt }

// PermitType is a priced catalog entry offered by one agency.
type PermitType struct {
	id              uuid.UUID
	agencyID        uuid.UUID
	name            string
	description     string
	price           decimal.Decimal
	timeEstimate    string
	externalItemRef *string
	createdAt       time.Time
	updatedAt       time.Time
}

type PermitTypeSpec struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	TimeEstimate    string
	ExternalItemRef *string
}

func NewPermitType(agencyID uuid.UUID, spec PermitTypeSpec, now time.Time) (*PermitType, error) {
	if agencyID == uuid.Nil {
		return nil, errs.WithField("agency_id", ErrAgencyRequired)
	}
	pt := &PermitType{
		id:        uuid.New(),
		agencyID:  agencyID,
		createdAt: now,
	}
	if err := pt.apply(spec, now); err != nil {
		return nil, err
	}
	return pt, nil
}

func ReconstructPermitType(id, agencyID uuid.UUID, name, description string, price decimal.Decimal, timeEstimate string, externalItemRef *string, createdAt, updatedAt time.Time) *PermitType {
	return &PermitType{
		id:              id,
		agencyID:        agencyID,
		name:            name,
		description:     description,
		price:           price,
		timeEstimate:    timeEstimate,
		externalItemRef: externalItemRef,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Revise replaces the editable fields. Existing quotations keep the totals
// they were synced with.
func (p *PermitType) Revise(spec PermitTypeSpec, now time.Time) error {
	return p.apply(spec, now)
}

func (p *PermitType) apply(spec PermitTypeSpec, now time.Time) error {
	name, err := normalizeName(spec.Name, ErrInvalidPermitName)
	if err != nil {
		return errs.WithField("name", err)
	}
	if spec.Price.IsNegative() {
		return errs.WithField("price", ErrNegativePrice)
	}
	description := strings.TrimSpace(spec.Description)
	if len(description) > MaxDescriptionLength {
		return errs.WithField("description", ErrDescriptionTooLong)
	}

	p.name = name
	p.description = description
	p.price = spec.Price.Round(2)
	p.timeEstimate = strings.TrimSpace(spec.TimeEstimate)
	p.externalItemRef = patch.OptionalText(spec.ExternalItemRef)
	p.updatedAt = now
	return nil
}

func (p *PermitType) ID() uuid.UUID            { return p.id }
func (p *PermitType) AgencyID() uuid.UUID      { return p.agencyID }
func (p *PermitType) Name() string             { return p.name }
func (p *PermitType) Description() string      { return p.description }
func (p *PermitType) Price() decimal.Decimal   { return p.price }
func (p *PermitType) TimeEstimate() string     { return p.timeEstimate }
func (p *PermitType) ExternalItemRef() *string { return p.externalItemRef }
func (p *PermitType) CreatedAt() time.Time     { return p.createdAt }
func (p *PermitType) UpdatedAt() time.Time     { return p.updatedAt }

func normalizeName(s string, errInvalid error) (string, error) {
	n := strings.TrimSpace(s)
	if n == "" || len(n) > MaxNameLength {
		return "", errInvalid
	}
	return n, nil
}
