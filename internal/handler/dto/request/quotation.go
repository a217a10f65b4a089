package request

import (
	"permit-quotation-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProjectRequest struct {
	ProjectType        string  `json:"project_type"`
	LotArea            *string `json:"lot_area"`
	AnnualCapacity     *string `json:"annual_capacity"`
	ProjectDescription string  `json:"project_description"`
}

func (r *ProjectRequest) toInput() *commands.ProjectInput {
	if r == nil {
		return nil
	}
	return &commands.ProjectInput{
		ProjectType:        r.ProjectType,
		LotArea:            r.LotArea,
		AnnualCapacity:     r.AnnualCapacity,
		ProjectDescription: r.ProjectDescription,
	}
}

// CreateQuotationRequest is the public intake form. Required fields are
// checked by the domain so errors carry the field name.
type CreateQuotationRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	CompanyName *string `json:"company_name"`
	ServiceType string  `json:"service_type"`

	ProjectDescription  string          `json:"project_description"`
	CurrentPermits      []string        `json:"current_permits"`
	MonitoringFrequency string          `json:"monitoring_frequency"`
	Notes               string          `json:"notes"`
	Project             *ProjectRequest `json:"project"`

	PermitNames   []string   `json:"permit_names" binding:"omitempty,max=50,dive,max=200"`
	AgencyID      *uuid.UUID `json:"agency_id"`
	CustomPermits []string   `json:"custom_permits" binding:"omitempty,max=50,dive,max=200"`
}

func (r *CreateQuotationRequest) ToCommand() commands.CreateQuotationRequest {
	return commands.CreateQuotationRequest{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		PhoneNumber:         r.PhoneNumber,
		CompanyName:         r.CompanyName,
		ServiceType:         r.ServiceType,
		ProjectDescription:  r.ProjectDescription,
		CurrentPermits:      r.CurrentPermits,
		MonitoringFrequency: r.MonitoringFrequency,
		Notes:               r.Notes,
		Project:             r.Project.toInput(),
		PermitNames:         r.PermitNames,
		AgencyID:            r.AgencyID,
		CustomPermits:       r.CustomPermits,
	}
}

type PermitSetRequest struct {
	PermitTypeIDs []uuid.UUID `json:"permit_type_ids"`
	CustomNames   []string    `json:"custom_names" binding:"omitempty,dive,max=200"`
}

// UpdateQuotationRequest leaves absent fields unchanged. A present permits
// object replaces the whole permit set.
type UpdateQuotationRequest struct {
	FirstName   *string           `json:"first_name"`
	LastName    *string           `json:"last_name"`
	Email       *string           `json:"email"`
	PhoneNumber *string           `json:"phone_number"`
	CompanyName *string           `json:"company_name"`
	Status      *string           `json:"status"`
	Description *string           `json:"description"`
	Permits     *PermitSetRequest `json:"permits"`
	Project     *ProjectRequest   `json:"project"`
}

func (r *UpdateQuotationRequest) ToCommand() commands.UpdateQuotationRequest {
	cmd := commands.UpdateQuotationRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		CompanyName: r.CompanyName,
		Status:      r.Status,
		Description: r.Description,
		Project:     r.Project.toInput(),
	}
	if r.Permits != nil {
		cmd.Permits = &commands.PermitSet{
			PermitTypeIDs: r.Permits.PermitTypeIDs,
			CustomNames:   r.Permits.CustomNames,
		}
	}
	return cmd
}

type AddPermitRequest struct {
	PermitTypeID uuid.UUID `json:"permit_type_id" binding:"required"`
}

type SendQuotationRequest struct {
	CustomMessage *string `json:"custom_message" binding:"omitempty,max=5000"`
}

func (r *SendQuotationRequest) ToCommand() commands.SendOptions {
	return commands.SendOptions{CustomMessage: r.CustomMessage}
}

type RespondRequest struct {
	Token string `json:"token" binding:"required"`
}
