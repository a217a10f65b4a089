package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/responsetoken"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrEstimateGone is returned by EstimateProvider when the remote estimate no
// longer exists.
var ErrEstimateGone = errs.New("estimate no longer exists at the provider")

type EstimateCustomer struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

type EstimateDraft struct {
	Reference string
	Customer  EstimateCustomer
	Items     []quotation.LineItem
	Memo      string
}

type EstimateReceipt struct {
	ID    string
	Total decimal.Decimal
}

type EstimateProvider interface {
	CreateEstimate(ctx context.Context, draft EstimateDraft) (*EstimateReceipt, error)
	UpdateEstimate(ctx context.Context, estimateID string, draft EstimateDraft) (*EstimateReceipt, error)
	DeleteEstimate(ctx context.Context, estimateID string) error
	MarkSent(ctx context.Context, estimateID string) error
	UpdateStatus(ctx context.Context, estimateID string, action quotation.Action) error
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Notification struct {
	To          string
	Cc          []string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

type DeliveryReceipt struct {
	MessageID string
}

type NotificationSender interface {
	Send(ctx context.Context, n Notification) (*DeliveryReceipt, error)
}

// QuotationDocument is everything the renderer prints. Approve and decline
// links are empty outside of Send.
type QuotationDocument struct {
	QuotationID   uuid.UUID
	IssuedAt      time.Time
	ValidUntil    time.Time
	CustomerName  string
	Email         string
	Phone         string
	Company       string
	ServiceType   string
	Description   string
	Items         []quotation.LineItem
	Total         decimal.Decimal
	CustomMessage string
	ApproveURL    string
	DeclineURL    string
}

type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

type DocumentRenderer interface {
	RenderQuotation(ctx context.Context, doc QuotationDocument) (*Attachment, error)
	RenderSendEmail(doc QuotationDocument) (*RenderedEmail, error)
	RenderConfirmationEmail(doc QuotationDocument) (*RenderedEmail, error)
}

type ResponseTokens interface {
	Mint(quotationID uuid.UUID, action string) (string, error)
	Verify(token string) (responsetoken.Payload, error)
	Validity() time.Duration
}
