package quotation

import (
	"strings"
	"time"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// Selection is either Catalogued or Custom.
type Selection interface {
	isSelection()
}

type Catalogued struct {
	PermitTypeID uuid.UUID
}

type Custom struct {
	Name string
}

func (Catalogued) isSelection() {}
func (Custom) isSelection()     {}

type PermitRequest struct {
	id          uuid.UUID
	quotationID uuid.UUID
	selection   Selection
	createdAt   time.Time
}

func NewCataloguedRequest(quotationID, permitTypeID uuid.UUID, now time.Time) *PermitRequest {
	return &PermitRequest{
		id:          uuid.New(),
		quotationID: quotationID,
		selection:   Catalogued{PermitTypeID: permitTypeID},
		createdAt:   now,
	}
}

func NewCustomRequest(quotationID uuid.UUID, name string, now time.Time) (*PermitRequest, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, errs.WithField("custom_permits", ErrCustomNameRequired)
	}
	return &PermitRequest{
		id:          uuid.New(),
		quotationID: quotationID,
		selection:   Custom{Name: n},
		createdAt:   now,
	}, nil
}

// ReconstructPermitRequest rebuilds a request from its stored columns, exactly
// one of which must be set.
func ReconstructPermitRequest(id, quotationID uuid.UUID, permitTypeID *uuid.UUID, customName *string, createdAt time.Time) (*PermitRequest, error) {
	var sel Selection
	switch {
	case permitTypeID != nil && customName == nil:
		sel = Catalogued{PermitTypeID: *permitTypeID}
	case permitTypeID == nil && customName != nil:
		sel = Custom{Name: *customName}
	default:
		return nil, errs.Wrapf(ErrInvalidSelection, "permit request %s", id)
	}
	return &PermitRequest{id: id, quotationID: quotationID, selection: sel, createdAt: createdAt}, nil
}

func (p *PermitRequest) ID() uuid.UUID          { return p.id }
func (p *PermitRequest) QuotationID() uuid.UUID { return p.quotationID }
func (p *PermitRequest) Selection() Selection   { return p.selection }
func (p *PermitRequest) CreatedAt() time.Time   { return p.createdAt }

func (p *PermitRequest) PermitTypeID() *uuid.UUID {
	if c, ok := p.selection.(Catalogued); ok {
		id := c.PermitTypeID
		return &id
	}
	return nil
}

func (p *PermitRequest) CustomName() *string {
	if c, ok := p.selection.(Custom); ok {
		n := c.Name
		return &n
	}
	return nil
}
