package request

import (
	"permit-quotation-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateAgencyRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type CreatePermitTypeRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	TimeEstimate    string          `json:"time_estimate" binding:"max=100"`
	ExternalItemRef *string         `json:"external_item_ref"`
}

func (r *CreatePermitTypeRequest) ToCommand() commands.PermitTypeRequest {
	return commands.PermitTypeRequest{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		TimeEstimate:    r.TimeEstimate,
		ExternalItemRef: r.ExternalItemRef,
	}
}

type UpdatePermitTypeRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=200"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	TimeEstimate    *string          `json:"time_estimate" binding:"omitempty,max=100"`
	ExternalItemRef *string          `json:"external_item_ref"`
}

func (r *UpdatePermitTypeRequest) ToCommand() commands.UpdatePermitTypeRequest {
	return commands.UpdatePermitTypeRequest{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		TimeEstimate:    r.TimeEstimate,
		ExternalItemRef: r.ExternalItemRef,
	}
}
