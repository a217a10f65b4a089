package response

import (
	"permit-quotation-service/internal/usecase/commands"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type MirrorResponse struct {
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

func FromMirror(m commands.MirrorResult) MirrorResponse {
	return MirrorResponse{Status: string(m.Status), Warning: m.Warning()}
}

type QuotationCreatedResponse struct {
	ID       uuid.UUID      `json:"id"`
	Mirror   MirrorResponse `json:"mirror"`
	Warnings []string       `json:"warnings"`
}

func FromCreateResult(r *commands.CreateQuotationResult) *QuotationCreatedResponse {
	return &QuotationCreatedResponse{
		ID:       r.QuotationID,
		Mirror:   FromMirror(r.Mirror),
		Warnings: nonNil(r.Warnings),
	}
}

type PermitChangeResponse struct {
	PermitRequestID uuid.UUID      `json:"permit_request_id"`
	Mirror          MirrorResponse `json:"mirror"`
}

func FromPermitChange(r *commands.PermitChangeResult) *PermitChangeResponse {
	return &PermitChangeResponse{PermitRequestID: r.PermitRequestID, Mirror: FromMirror(r.Mirror)}
}

// QuotationMutationResponse returns the fresh view next to the mirror outcome.
type QuotationMutationResponse struct {
	Quotation *queries.QuotationView `json:"quotation"`
	Mirror    MirrorResponse         `json:"mirror"`
}

type SendResponse struct {
	MessageID string         `json:"message_id"`
	Mirror    MirrorResponse `json:"mirror"`
	Warnings  []string       `json:"warnings"`
}

func FromSendResult(r *commands.SendResult) *SendResponse {
	return &SendResponse{
		MessageID: r.MessageID,
		Mirror:    FromMirror(r.Mirror),
		Warnings:  nonNil(r.Warnings),
	}
}

type RespondResponse struct {
	QuotationID uuid.UUID      `json:"quotation_id"`
	Status      string         `json:"status"`
	Replayed    bool           `json:"replayed"`
	Mirror      MirrorResponse `json:"mirror"`
}

func FromResponseResult(r *commands.ResponseResult) *RespondResponse {
	return &RespondResponse{
		QuotationID: r.QuotationID,
		Status:      string(r.Status),
		Replayed:    r.Replayed,
		Mirror:      FromMirror(r.Mirror),
	}
}

type QuotationListResponse struct {
	Quotations []*queries.QuotationListItem `json:"quotations"`
	NextCursor string                       `json:"next_cursor,omitempty"`
}

func FromQuotationList(items []*queries.QuotationListItem, next *queries.Cursor) *QuotationListResponse {
	if items == nil {
		items = []*queries.QuotationListItem{}
	}
	resp := &QuotationListResponse{Quotations: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
