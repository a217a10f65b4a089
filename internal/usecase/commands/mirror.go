package commands

import (
	"context"
	"log/slog"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/infra"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/patch"
	"permit-quotation-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrMirrorSuperseded reports a mirror whose quotation changed while the
// provider call was in flight.
var ErrMirrorSuperseded = errs.New("quotation changed while its estimate was being mirrored")

type MirrorStatus string

const (
	MirrorSkipped MirrorStatus = "skipped"
	MirrorSynced  MirrorStatus = "synced"
	MirrorFailed  MirrorStatus = "failed"
)

// MirrorResult reports what happened to the estimate provider copy after a
// local write committed. Err is set only when Status is MirrorFailed.
type MirrorResult struct {
	Status MirrorStatus
	Err    error
}

func mirrorSkipped() MirrorResult { return MirrorResult{Status: MirrorSkipped} }
func mirrorSynced() MirrorResult  { return MirrorResult{Status: MirrorSynced} }

func mirrorFailed(err error) MirrorResult {
	return MirrorResult{Status: MirrorFailed, Err: err}
}

func (m MirrorResult) Failed() bool {
	return m.Status == MirrorFailed
}

// Warning is the caller-facing note for a failed mirror, empty otherwise.
func (m MirrorResult) Warning() string {
	if !m.Failed() {
		return ""
	}
	return "the quotation was saved but the estimate provider could not be updated; it will be retried"
}

// estimateMirror pushes the current local state of a quotation to the
// estimate provider. Failures are logged and reported, never returned.
type estimateMirror struct {
	uow      shared.UnitOfWork
	provider EstimateProvider
	pricing  quotation.Pricing
	clock    clock.Clock
}

func newEstimateMirror(uow shared.UnitOfWork, provider EstimateProvider, pricing quotation.Pricing, clk clock.Clock) *estimateMirror {
	return &estimateMirror{uow: uow, provider: provider, pricing: pricing, clock: clk}
}

// refresh updates the remote estimate, or creates one when the quotation has
// none or the remote copy is gone. The result is written back as synced only
// when the quotation was not modified while the provider call was in flight.
func (m *estimateMirror) refresh(ctx context.Context, quotationID uuid.UUID, op string) MirrorResult {
	reads := m.uow.CommandReads()
	q, err := reads.QuotationByID(ctx, quotationID)
	if err != nil {
		return m.fail(ctx, quotationID, op, err)
	}
	permits, err := reads.PricedPermits(ctx, quotationID)
	if err != nil {
		return m.fail(ctx, quotationID, op, err)
	}
	builtFrom := q.UpdatedAt()

	draft := estimateDraft(q, m.pricing.LineItems(permits))

	var receipt *EstimateReceipt
	if id := q.ExternalEstimateID(); id != nil {
		receipt, err = m.provider.UpdateEstimate(ctx, *id, draft)
		if errs.Is(err, ErrEstimateGone) {
			slog.Info("remote estimate gone, creating a new one", "quotation_id", quotationID, "estimate_id", *id)
			receipt, err = m.provider.CreateEstimate(ctx, draft)
		}
	} else {
		receipt, err = m.provider.CreateEstimate(ctx, draft)
	}
	if err != nil {
		return m.fail(ctx, quotationID, op, err)
	}

	now := m.clock.Now()
	stale := false
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cur, derr := tx.Reads().QuotationForUpdate(ctx, quotationID)
		if derr != nil {
			return derr
		}
		if cur.UpdatedAt().Equal(builtFrom) {
			cur.ApplyEstimate(receipt.ID, receipt.Total, now)
		} else {
			stale = true
			cur.ApplyStaleEstimate(receipt.ID, receipt.Total)
		}
		return tx.Quotations().SaveSync(ctx, tx.DB(), cur, now)
	})
	if err != nil {
		return m.fail(ctx, quotationID, op, err)
	}
	if stale {
		slog.Info("estimate mirror superseded by a newer edit", "quotation_id", quotationID, "operation", op, "estimate_id", receipt.ID)
		return mirrorFailed(ErrMirrorSuperseded)
	}

	slog.Debug("estimate mirrored", "quotation_id", quotationID, "operation", op, "estimate_id", receipt.ID, "total", receipt.Total.StringFixed(2))
	return mirrorSynced()
}

// confirm stamps a quotation synced after the provider accepted a change that
// left its estimate current. A quotation edited since its last mirror is left
// for the reconciler.
func (m *estimateMirror) confirm(ctx context.Context, quotationID uuid.UUID, op string) {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cur, err := tx.Reads().QuotationForUpdate(ctx, quotationID)
		if err != nil {
			return err
		}
		id, amount := cur.ExternalEstimateID(), cur.ExternalEstimateAmount()
		if id == nil || amount == nil || !cur.IsSynced() {
			return nil
		}
		now := m.clock.Now()
		cur.ApplyEstimate(*id, *amount, now)
		return tx.Quotations().SaveSync(ctx, tx.DB(), cur, now)
	})
	if err != nil {
		slog.Warn("failed to record estimate sync", "quotation_id", quotationID, "operation", op, "error", err.Error())
	}
}

// fail logs err and stamps the attempt so the reconciler rotates through
// quotations that keep failing.
func (m *estimateMirror) fail(ctx context.Context, quotationID uuid.UUID, op string, err error) MirrorResult {
	slog.Warn("estimate mirror failed", "quotation_id", quotationID, "operation", op, "error", err.Error())
	serr := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Quotations().MarkSyncAttempted(ctx, tx.DB(), quotationID, m.clock.Now())
	})
	if serr != nil && !infra.IsKind(serr, infra.KindNotFound) {
		slog.Warn("failed to record mirror attempt", "quotation_id", quotationID, "error", serr.Error())
	}
	return mirrorFailed(err)
}

func estimateDraft(q *quotation.Quotation, items []quotation.LineItem) EstimateDraft {
	c := q.Contact()
	return EstimateDraft{
		Reference: q.ID().String(),
		Customer: EstimateCustomer{
			Name:    c.FullName(),
			Email:   c.Email(),
			Phone:   c.Phone(),
			Company: patch.Coalesce(c.CompanyName(), ""),
		},
		Items: items,
		Memo:  q.ServiceType().Label(),
	}
}
