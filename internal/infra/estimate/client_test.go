//go:build unit

package estimate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeProvider struct {
	tokenCalls atomic.Int32
	// rejectFirst makes the first authenticated call return 401.
	rejectFirst atomic.Bool
	lastBody    estimatePayload
	lastStatus  statusPayload
}

func (f *fakeProvider) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		n := f.tokenCalls.Add(1)
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-" + string(rune('0'+n)), ExpiresIn: 3600})
	})
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if f.rejectFirst.CompareAndSwap(true, false) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}
	mux.HandleFunc("POST /estimates", auth(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastBody))
		total := decimal.Zero
		for _, it := range f.lastBody.LineItems {
			total = total.Add(it.UnitPrice)
		}
		_ = json.NewEncoder(w).Encode(estimateResponse{ID: "EST-1", Total: total})
	}))
	mux.HandleFunc("PUT /estimates/{id}", auth(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "EST-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(estimateResponse{ID: "EST-1", Total: decimal.NewFromInt(10)})
	}))
	mux.HandleFunc("DELETE /estimates/{id}", auth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	mux.HandleFunc("POST /estimates/{id}/status", auth(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastStatus))
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("POST /estimates/{id}/send", auth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("provider down"))
	}))
	return mux
}

func newTestClient(t *testing.T, f *fakeProvider) *Client {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	session := NewSession(Credentials{TokenURL: srv.URL + "/oauth2/token", ClientID: "id", ClientSecret: "secret", RefreshToken: "refresh"}, srv.Client(), clk)
	return NewClient(srv.URL, srv.Client(), session, rate.NewLimiter(rate.Inf, 1))
}

func draft() commands.EstimateDraft {
	return commands.EstimateDraft{
		Reference: "q-1",
		Customer:  commands.EstimateCustomer{Name: "Maria Santos", Email: "maria@example.com"},
		Items: []quotation.LineItem{
			{Description: "ECC", UnitPrice: decimal.RequireFromString("5000.00"), Qty: 1},
		},
	}
}

func TestClient_CreateEstimate(t *testing.T) {
	f := &fakeProvider{}
	c := newTestClient(t, f)

	receipt, err := c.CreateEstimate(context.Background(), draft())

	require.NoError(t, err)
	assert.Equal(t, "EST-1", receipt.ID)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "q-1", f.lastBody.Reference)
	require.Len(t, f.lastBody.LineItems, 1)
	assert.Equal(t, 1, f.lastBody.LineItems[0].Quantity)

	_, err = c.CreateEstimate(context.Background(), draft())
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.tokenCalls.Load(), "token is cached between calls")
}

func TestClient_RetriesOnceAfterUnauthorized(t *testing.T) {
	f := &fakeProvider{}
	c := newTestClient(t, f)
	f.rejectFirst.Store(true)

	_, err := c.CreateEstimate(context.Background(), draft())

	require.NoError(t, err)
	assert.Equal(t, int32(2), f.tokenCalls.Load())
}

func TestClient_NotFoundMeansGone(t *testing.T) {
	c := newTestClient(t, &fakeProvider{})

	err := c.DeleteEstimate(context.Background(), "EST-404")
	assert.True(t, errs.Is(err, commands.ErrEstimateGone))

	_, err = c.UpdateEstimate(context.Background(), "EST-404", draft())
	assert.True(t, errs.Is(err, commands.ErrEstimateGone))
}

func TestClient_UpdateStatus(t *testing.T) {
	f := &fakeProvider{}
	c := newTestClient(t, f)

	require.NoError(t, c.UpdateStatus(context.Background(), "EST-1", quotation.ActionDecline))
	assert.Equal(t, "Rejected", f.lastStatus.Status)

	require.NoError(t, c.UpdateStatus(context.Background(), "EST-1", quotation.ActionApprove))
	assert.Equal(t, "Accepted", f.lastStatus.Status)
}

func TestClient_ServerErrorIsExternalProvider(t *testing.T) {
	c := newTestClient(t, &fakeProvider{})

	err := c.MarkSent(context.Background(), "EST-1")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrExternalProvider))
	assert.Contains(t, err.Error(), "provider down")
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	receipt, err := p.CreateEstimate(ctx, draft())
	require.NoError(t, err)
	assert.Equal(t, "EST-00001", receipt.ID)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(5000)))

	require.NoError(t, p.MarkSent(ctx, receipt.ID))
	require.NoError(t, p.UpdateStatus(ctx, receipt.ID, quotation.ActionApprove))
	got, ok := p.Get(receipt.ID)
	require.True(t, ok)
	assert.True(t, got.Sent)
	assert.Equal(t, "Accepted", got.Status)

	require.NoError(t, p.DeleteEstimate(ctx, receipt.ID))
	assert.True(t, errs.Is(p.DeleteEstimate(ctx, receipt.ID), commands.ErrEstimateGone))
}
