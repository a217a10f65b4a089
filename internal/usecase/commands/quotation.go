package commands

//go:generate mockgen -source=quotation.go -destination=../../../tests/mock/commands/quotation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound     = errs.Categorize("quotation not found", errs.ErrNotFound)
	ErrPermitTypeNotFound    = errs.Categorize("permit type not found", errs.ErrNotFound)
	ErrPermitRequestNotFound = errs.Categorize("permit request not found on this quotation", errs.ErrNotFound)
	ErrNotificationFailed    = errs.Categorize("failed to send the quotation to the client", errs.ErrExternalProvider)
)

type ProjectInput struct {
	ProjectType        string
	LotArea            *string
	AnnualCapacity     *string
	ProjectDescription string
}

func (p ProjectInput) spec() quotation.ProjectSpec {
	return quotation.ProjectSpec{
		ProjectType:    p.ProjectType,
		LotArea:        p.LotArea,
		AnnualCapacity: p.AnnualCapacity,
		Description:    p.ProjectDescription,
	}
}

type CreateQuotationRequest struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	CompanyName *string
	ServiceType string

	ProjectDescription  string
	CurrentPermits      []string
	MonitoringFrequency string
	Notes               string
	Project             *ProjectInput

	// PermitNames are resolved against AgencyID when set, otherwise against
	// every agency. Unknown names become custom requests.
	PermitNames   []string
	AgencyID      *uuid.UUID
	CustomPermits []string
}

type CreateQuotationResult struct {
	QuotationID uuid.UUID
	Mirror      MirrorResult
	Warnings    []string
}

// PermitSet replaces every permit request of a quotation.
type PermitSet struct {
	PermitTypeIDs []uuid.UUID
	CustomNames   []string
}

type UpdateQuotationRequest struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	CompanyName *string
	Status      *string
	Description *string
	Permits     *PermitSet
	Project     *ProjectInput
}

type PermitChangeResult struct {
	PermitRequestID uuid.UUID
	Mirror          MirrorResult
}

type SendOptions struct {
	// CustomMessage switches to the custom email variant, where an estimate
	// is optional.
	CustomMessage *string
}

type SendResult struct {
	MessageID string
	Mirror    MirrorResult
	Warnings  []string
}

type ResponseResult struct {
	QuotationID uuid.UUID
	Status      quotation.Status
	Replayed    bool
	Mirror      MirrorResult
}

type ReconcileReport struct {
	Attempted int
	Synced    int
	Failed    int
}

// QuotationSettings holds the deployment values the lifecycle needs.
type QuotationSettings struct {
	ResponseBaseURL string
	StaffInbox      string
}

type QuotationCommands interface {
	Create(ctx context.Context, req CreateQuotationRequest) (*CreateQuotationResult, error)
	AddPermit(ctx context.Context, quotationID, permitTypeID uuid.UUID) (*PermitChangeResult, error)
	RemovePermit(ctx context.Context, quotationID, permitRequestID uuid.UUID) (*PermitChangeResult, error)
	Update(ctx context.Context, quotationID uuid.UUID, req UpdateQuotationRequest) (*MirrorResult, error)
	Send(ctx context.Context, quotationID uuid.UUID, opts SendOptions) (*SendResult, error)
	HandleResponse(ctx context.Context, token string) (*ResponseResult, error)
	Delete(ctx context.Context, quotationID uuid.UUID) (*MirrorResult, error)
	Resync(ctx context.Context, quotationID uuid.UUID) (*MirrorResult, error)
	ReconcileUnsynced(ctx context.Context, limit int) (*ReconcileReport, error)
}

type quotationUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider EstimateProvider
	sender   NotificationSender
	renderer DocumentRenderer
	tokens   ResponseTokens
	pricing  quotation.Pricing
	settings QuotationSettings
	clock    clock.Clock
	mirror   *estimateMirror
}

func NewQuotationUseCase(
	uow shared.UnitOfWork,
	provider EstimateProvider,
	sender NotificationSender,
	renderer DocumentRenderer,
	tokens ResponseTokens,
	pricing quotation.Pricing,
	settings QuotationSettings,
	clk clock.Clock,
) QuotationCommands {
	return &quotationUseCaseImpl{
		uow:      uow,
		provider: provider,
		sender:   sender,
		renderer: renderer,
		tokens:   tokens,
		pricing:  pricing,
		settings: settings,
		clock:    clk,
		mirror:   newEstimateMirror(uow, provider, pricing, clk),
	}
}

func (uc *quotationUseCaseImpl) Create(ctx context.Context, req CreateQuotationRequest) (*CreateQuotationResult, error) {
	contact, err := quotation.NewContact(req.FirstName, req.LastName, req.Email, req.PhoneNumber, req.CompanyName)
	if err != nil {
		return nil, err
	}
	serviceType, err := quotation.ParseServiceType(req.ServiceType)
	if err != nil {
		return nil, errs.WithField("service_type", err)
	}

	description := quotation.BuildDescription(serviceType, quotation.DescriptionInput{
		ProjectDescription:  req.ProjectDescription,
		CurrentPermits:      req.CurrentPermits,
		MonitoringFrequency: req.MonitoringFrequency,
		Notes:               req.Notes,
	})

	now := uc.clock.Now()
	q, err := quotation.NewQuotation(contact, serviceType, description, now)
	if err != nil {
		return nil, err
	}

	var project *quotation.Project
	if req.Project != nil {
		project, err = quotation.NewProject(q.ID(), req.Project.spec(), now)
		if err != nil {
			return nil, err
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Quotations().Create(ctx, tx.DB(), q); derr != nil {
			return derr
		}
		if project != nil {
			if derr := tx.Projects().Upsert(ctx, tx.DB(), project); derr != nil {
				return derr
			}
		}
		for _, name := range req.PermitNames {
			pr, derr := uc.resolvePermit(ctx, tx, q.ID(), name, req.AgencyID)
			if derr != nil {
				return derr
			}
			if pr == nil {
				continue
			}
			if derr = tx.PermitRequests().Create(ctx, tx.DB(), pr); derr != nil {
				return derr
			}
		}
		return uc.insertCustomPermits(ctx, tx, q.ID(), req.CustomPermits)
	})
	if err != nil {
		return nil, err
	}

	result := &CreateQuotationResult{QuotationID: q.ID()}
	result.Mirror = uc.mirror.refresh(ctx, q.ID(), "create")
	if w := result.Mirror.Warning(); w != "" {
		result.Warnings = append(result.Warnings, w)
	}

	uc.sendConfirmation(ctx, q.ID())
	return result, nil
}

// resolvePermit maps a submitted permit name to a catalog entry, falling back
// to a custom request. Blank names yield nil.
func (uc *quotationUseCaseImpl) resolvePermit(ctx context.Context, tx shared.Tx, quotationID uuid.UUID, name string, agencyID *uuid.UUID) (*quotation.PermitRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	pt, err := tx.Reads().PermitTypeByName(ctx, name, agencyID)
	switch {
	case err == nil:
		return quotation.NewCataloguedRequest(quotationID, pt.ID(), uc.clock.Now()), nil
	case infra.IsKind(err, infra.KindNotFound):
		return quotation.NewCustomRequest(quotationID, name, uc.clock.Now())
	default:
		return nil, err
	}
}

func (uc *quotationUseCaseImpl) insertCustomPermits(ctx context.Context, tx shared.Tx, quotationID uuid.UUID, names []string) error {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		pr, err := quotation.NewCustomRequest(quotationID, name, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.PermitRequests().Create(ctx, tx.DB(), pr); err != nil {
			return err
		}
	}
	return nil
}

func (uc *quotationUseCaseImpl) sendConfirmation(ctx context.Context, quotationID uuid.UUID) {
	doc, err := uc.loadDocument(ctx, quotationID)
	if err != nil {
		slog.Warn("failed to load quotation for confirmation email", "quotation_id", quotationID, "error", err.Error())
		return
	}
	email, err := uc.renderer.RenderConfirmationEmail(*doc)
	if err != nil {
		slog.Warn("failed to render confirmation email", "quotation_id", quotationID, "error", err.Error())
		return
	}

	n := Notification{To: doc.Email, Subject: email.Subject, HTML: email.HTML, Text: email.Text}
	if uc.settings.StaffInbox != "" {
		n.Cc = []string{uc.settings.StaffInbox}
	}
	if _, err := uc.sender.Send(ctx, n); err != nil {
		slog.Warn("failed to send confirmation email", "quotation_id", quotationID, "operation", "create", "error", err.Error())
	}
}

func (uc *quotationUseCaseImpl) AddPermit(ctx context.Context, quotationID, permitTypeID uuid.UUID) (*PermitChangeResult, error) {
	var created *quotation.PermitRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().QuotationForUpdate(ctx, quotationID); derr != nil {
			return notFoundAs(derr, ErrQuotationNotFound)
		}
		pt, derr := tx.Reads().PermitTypeByID(ctx, permitTypeID)
		if derr != nil {
			return notFoundAs(derr, ErrPermitTypeNotFound)
		}

		now := uc.clock.Now()
		created = quotation.NewCataloguedRequest(quotationID, pt.ID(), now)
		if derr = tx.PermitRequests().Create(ctx, tx.DB(), created); derr != nil {
			return derr
		}
		return tx.Quotations().MarkUnsynced(ctx, tx.DB(), quotationID, now)
	})
	if err != nil {
		return nil, err
	}

	return &PermitChangeResult{
		PermitRequestID: created.ID(),
		Mirror:          uc.mirror.refresh(ctx, quotationID, "add_permit"),
	}, nil
}

func (uc *quotationUseCaseImpl) RemovePermit(ctx context.Context, quotationID, permitRequestID uuid.UUID) (*PermitChangeResult, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().QuotationForUpdate(ctx, quotationID); derr != nil {
			return notFoundAs(derr, ErrQuotationNotFound)
		}
		if derr := tx.PermitRequests().Delete(ctx, tx.DB(), quotationID, permitRequestID); derr != nil {
			return notFoundAs(derr, ErrPermitRequestNotFound)
		}
		return tx.Quotations().MarkUnsynced(ctx, tx.DB(), quotationID, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return &PermitChangeResult{
		PermitRequestID: permitRequestID,
		Mirror:          uc.mirror.refresh(ctx, quotationID, "remove_permit"),
	}, nil
}

func (uc *quotationUseCaseImpl) Update(ctx context.Context, quotationID uuid.UUID, req UpdateQuotationRequest) (*MirrorResult, error) {
	patch := quotation.Patch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.PhoneNumber,
		CompanyName: req.CompanyName,
		Description: req.Description,
	}
	if req.Status != nil {
		st, err := quotation.ParseStatus(*req.Status)
		if err != nil {
			return nil, errs.WithField("status", err)
		}
		patch.Status = &st
	}

	var hasEstimate bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Reads().QuotationForUpdate(ctx, quotationID)
		if derr != nil {
			return notFoundAs(derr, ErrQuotationNotFound)
		}

		now := uc.clock.Now()
		if derr = q.ApplyPatch(patch, now); derr != nil {
			return derr
		}
		if req.Permits != nil {
			q.MarkUnsynced(now)
		}
		if derr = tx.Quotations().UpdateDetails(ctx, tx.DB(), q); derr != nil {
			return derr
		}

		if req.Permits != nil {
			if derr = uc.replacePermits(ctx, tx, quotationID, *req.Permits); derr != nil {
				return derr
			}
		}
		if req.Project != nil {
			if derr = uc.upsertProject(ctx, tx, quotationID, *req.Project); derr != nil {
				return derr
			}
		}
		hasEstimate = q.HasEstimate()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := mirrorSkipped()
	if hasEstimate {
		result = uc.mirror.refresh(ctx, quotationID, "update")
	}
	return &result, nil
}

func (uc *quotationUseCaseImpl) replacePermits(ctx context.Context, tx shared.Tx, quotationID uuid.UUID, set PermitSet) error {
	if err := tx.PermitRequests().DeleteAllForQuotation(ctx, tx.DB(), quotationID); err != nil {
		return err
	}
	for _, id := range set.PermitTypeIDs {
		pt, err := tx.Reads().PermitTypeByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrPermitTypeNotFound)
		}
		pr := quotation.NewCataloguedRequest(quotationID, pt.ID(), uc.clock.Now())
		if err = tx.PermitRequests().Create(ctx, tx.DB(), pr); err != nil {
			return err
		}
	}
	return uc.insertCustomPermits(ctx, tx, quotationID, set.CustomNames)
}

func (uc *quotationUseCaseImpl) upsertProject(ctx context.Context, tx shared.Tx, quotationID uuid.UUID, in ProjectInput) error {
	now := uc.clock.Now()
	project, err := tx.Reads().ProjectByQuotation(ctx, quotationID)
	switch {
	case err == nil:
		if err = project.Revise(in.spec(), now); err != nil {
			return err
		}
	case infra.IsKind(err, infra.KindNotFound):
		if project, err = quotation.NewProject(quotationID, in.spec(), now); err != nil {
			return err
		}
	default:
		return err
	}
	return tx.Projects().Upsert(ctx, tx.DB(), project)
}

func (uc *quotationUseCaseImpl) Send(ctx context.Context, quotationID uuid.UUID, opts SendOptions) (*SendResult, error) {
	q, err := uc.uow.CommandReads().QuotationByID(ctx, quotationID)
	if err != nil {
		return nil, notFoundAs(err, ErrQuotationNotFound)
	}
	if err = q.CheckSendable(); err != nil {
		return nil, err
	}

	custom := opts.CustomMessage != nil && strings.TrimSpace(*opts.CustomMessage) != ""
	if !custom {
		if err = q.RequireEstimate(); err != nil {
			return nil, err
		}
	}

	result := &SendResult{Mirror: mirrorSkipped()}
	if !q.HasEstimate() || !q.IsSynced() {
		result.Mirror = uc.mirror.refresh(ctx, quotationID, "send")
		if w := result.Mirror.Warning(); w != "" {
			result.Warnings = append(result.Warnings, w)
		}
	}

	doc, err := uc.loadDocument(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if custom {
		doc.CustomMessage = strings.TrimSpace(*opts.CustomMessage)
	}
	if err = uc.attachLinks(doc); err != nil {
		return nil, err
	}

	pdf, err := uc.renderer.RenderQuotation(ctx, *doc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render quotation document")
	}
	email, err := uc.renderer.RenderSendEmail(*doc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render quotation email")
	}

	// The row stays locked from the sendable check until the status commits,
	// so a concurrent send waits and then sees the quotation as sent.
	var (
		receipt    *DeliveryReceipt
		estimateID *string
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cur, derr := tx.Reads().QuotationForUpdate(ctx, quotationID)
		if derr != nil {
			return notFoundAs(derr, ErrQuotationNotFound)
		}
		if derr = cur.CheckSendable(); derr != nil {
			return derr
		}
		// a retried transaction must not email the client twice
		if receipt == nil {
			receipt, derr = uc.sender.Send(ctx, Notification{
				To:          doc.Email,
				Subject:     email.Subject,
				HTML:        email.HTML,
				Text:        email.Text,
				Attachments: []Attachment{*pdf},
			})
			if derr != nil {
				slog.Error("quotation notification failed", "quotation_id", quotationID, "error", derr.Error())
				return errs.Mark(errs.Wrap(derr, ErrNotificationFailed.Error()), ErrNotificationFailed)
			}
		}
		if derr = cur.MarkSent(uc.clock.Now()); derr != nil {
			return derr
		}
		estimateID = cur.ExternalEstimateID()
		return tx.Quotations().UpdateStatus(ctx, tx.DB(), cur)
	})
	if err != nil {
		return nil, err
	}
	result.MessageID = receipt.MessageID

	if estimateID != nil {
		if merr := uc.provider.MarkSent(ctx, *estimateID); merr != nil {
			slog.Warn("failed to mark remote estimate sent", "quotation_id", quotationID, "operation", "send", "error", merr.Error())
			result.Mirror = mirrorFailed(merr)
			result.Warnings = append(result.Warnings, "the quotation was sent but the estimate provider was not told")
		} else {
			uc.mirror.confirm(ctx, quotationID, "send")
		}
	}
	return result, nil
}

func (uc *quotationUseCaseImpl) attachLinks(doc *QuotationDocument) error {
	approve, err := uc.tokens.Mint(doc.QuotationID, quotation.ActionApprove.String())
	if err != nil {
		return errs.Wrap(err, "failed to mint approve token")
	}
	decline, err := uc.tokens.Mint(doc.QuotationID, quotation.ActionDecline.String())
	if err != nil {
		return errs.Wrap(err, "failed to mint decline token")
	}
	doc.ApproveURL = ResponseLink(uc.settings.ResponseBaseURL, approve)
	doc.DeclineURL = ResponseLink(uc.settings.ResponseBaseURL, decline)
	doc.ValidUntil = doc.IssuedAt.Add(uc.tokens.Validity())
	return nil
}

// ResponseLink builds the client-facing URL carrying a response token.
func ResponseLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/quotation/respond?token=" + url.QueryEscape(token)
}

func (uc *quotationUseCaseImpl) loadDocument(ctx context.Context, quotationID uuid.UUID) (*QuotationDocument, error) {
	reads := uc.uow.CommandReads()
	q, err := reads.QuotationByID(ctx, quotationID)
	if err != nil {
		return nil, notFoundAs(err, ErrQuotationNotFound)
	}
	permits, err := reads.PricedPermits(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	items := uc.pricing.LineItems(permits)
	c := q.Contact()
	doc := &QuotationDocument{
		QuotationID:  q.ID(),
		IssuedAt:     uc.clock.Now(),
		CustomerName: c.FullName(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		ServiceType:  q.ServiceType().Label(),
		Description:  q.Description(),
		Items:        items,
		Total:        quotation.Total(items),
	}
	if c.CompanyName() != nil {
		doc.Company = *c.CompanyName()
	}
	return doc, nil
}

func (uc *quotationUseCaseImpl) HandleResponse(ctx context.Context, token string) (*ResponseResult, error) {
	payload, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	action, err := quotation.ParseAction(payload.Action)
	if err != nil {
		return nil, err
	}

	result := &ResponseResult{QuotationID: payload.QuotationID, Mirror: mirrorSkipped()}
	var estimateID *string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Reads().QuotationForUpdate(ctx, payload.QuotationID)
		if derr != nil {
			return notFoundAs(derr, ErrQuotationNotFound)
		}
		changed, derr := q.RecordResponse(action, uc.clock.Now())
		if derr != nil {
			return derr
		}
		result.Status = q.Status()
		result.Replayed = !changed
		estimateID = q.ExternalEstimateID()
		if !changed {
			return nil
		}
		return tx.Quotations().UpdateStatus(ctx, tx.DB(), q)
	})
	if err != nil {
		return nil, err
	}

	if result.Replayed || estimateID == nil {
		return result, nil
	}
	if merr := uc.provider.UpdateStatus(ctx, *estimateID, action); merr != nil {
		slog.Warn("failed to mirror client response", "quotation_id", payload.QuotationID, "operation", "respond", "error", merr.Error())
		result.Mirror = mirrorFailed(merr)
		return result, nil
	}
	result.Mirror = mirrorSynced()
	return result, nil
}

func (uc *quotationUseCaseImpl) Delete(ctx context.Context, quotationID uuid.UUID) (*MirrorResult, error) {
	q, err := uc.uow.CommandReads().QuotationByID(ctx, quotationID)
	if err != nil {
		return nil, notFoundAs(err, ErrQuotationNotFound)
	}

	result := mirrorSkipped()
	if id := q.ExternalEstimateID(); id != nil {
		switch derr := uc.provider.DeleteEstimate(ctx, *id); {
		case derr == nil, errs.Is(derr, ErrEstimateGone):
			result = mirrorSynced()
		default:
			slog.Warn("failed to delete remote estimate", "quotation_id", quotationID, "operation", "delete", "error", derr.Error())
			result = mirrorFailed(derr)
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.PermitRequests().DeleteAllForQuotation(ctx, tx.DB(), quotationID); derr != nil {
			return derr
		}
		return notFoundAs(tx.Quotations().Delete(ctx, tx.DB(), quotationID), ErrQuotationNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *quotationUseCaseImpl) Resync(ctx context.Context, quotationID uuid.UUID) (*MirrorResult, error) {
	if _, err := uc.uow.CommandReads().QuotationByID(ctx, quotationID); err != nil {
		return nil, notFoundAs(err, ErrQuotationNotFound)
	}
	result := uc.mirror.refresh(ctx, quotationID, "resync")
	return &result, nil
}

// ReconcileUnsynced retries the mirror of up to limit unanswered quotations
// whose last sync failed or was never attempted.
func (uc *quotationUseCaseImpl) ReconcileUnsynced(ctx context.Context, limit int) (*ReconcileReport, error) {
	ids, err := uc.uow.CommandReads().UnsyncedQuotationIDs(ctx, limit)
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{}
	for _, id := range ids {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Attempted++
		if uc.mirror.refresh(ctx, id, "reconcile").Failed() {
			report.Failed++
			continue
		}
		report.Synced++
	}
	return report, nil
}

// notFoundAs replaces a repository not-found error with sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
