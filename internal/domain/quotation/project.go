package quotation

import (
	"strings"
	"time"

	"permit-quotation-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProjectSpec struct {
	ProjectType    string
	LotArea        *string
	AnnualCapacity *string
	Description    string
}

// Project holds optional site details for a quotation.
type Project struct {
	quotationID    uuid.UUID
	projectType    string
	lotArea        *string
	annualCapacity *string
	description    string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProject(quotationID uuid.UUID, spec ProjectSpec, now time.Time) (*Project, error) {
	p := &Project{quotationID: quotationID, createdAt: now}
	if err := p.Revise(spec, now); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructProject(quotationID uuid.UUID, projectType string, lotArea, annualCapacity *string, description string, createdAt, updatedAt time.Time) *Project {
	return &Project{
		quotationID:    quotationID,
		projectType:    projectType,
		lotArea:        lotArea,
		annualCapacity: annualCapacity,
		description:    description,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Project) Revise(spec ProjectSpec, now time.Time) error {
	pt := strings.TrimSpace(spec.ProjectType)
	if pt == "" {
		return errs.WithField("project.project_type", ErrProjectTypeMissing)
	}
	p.projectType = pt
	p.lotArea = trimmedOrNil(spec.LotArea)
	p.annualCapacity = trimmedOrNil(spec.AnnualCapacity)
	p.description = strings.TrimSpace(spec.Description)
	p.updatedAt = now
	return nil
}

func (p *Project) QuotationID() uuid.UUID  { return p.quotationID }
func (p *Project) ProjectType() string     { return p.projectType }
func (p *Project) LotArea() *string        { return p.lotArea }
func (p *Project) AnnualCapacity() *string { return p.annualCapacity }
func (p *Project) Description() string     { return p.description }
func (p *Project) CreatedAt() time.Time    { return p.createdAt }
func (p *Project) UpdatedAt() time.Time    { return p.updatedAt }

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
