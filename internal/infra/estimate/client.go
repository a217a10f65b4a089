// Package estimate talks to the accounting system that mirrors quotations as
// estimates.
package estimate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

var errUnauthorized = errs.Categorize("estimate provider rejected the access token", errs.ErrExternalProvider)

type customerPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

type lineItemPayload struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	ItemID      *string         `json:"item_id,omitempty"`
}

type estimatePayload struct {
	Reference string            `json:"reference_number"`
	Customer  customerPayload   `json:"customer"`
	LineItems []lineItemPayload `json:"line_items"`
	Notes     string            `json:"notes,omitempty"`
}

type estimateResponse struct {
	ID    string          `json:"estimate_id"`
	Total decimal.Decimal `json:"total"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// Client is the REST implementation of commands.EstimateProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	limiter    *rate.Limiter
}

func NewClient(baseURL string, httpClient *http.Client, session *Session, limiter *rate.Limiter) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		session:    session,
		limiter:    limiter,
	}
}

func (c *Client) CreateEstimate(ctx context.Context, draft commands.EstimateDraft) (*commands.EstimateReceipt, error) {
	var out estimateResponse
	if err := c.do(ctx, http.MethodPost, "/estimates", toPayload(draft), &out); err != nil {
		return nil, errs.Wrap(err, "create estimate")
	}
	return &commands.EstimateReceipt{ID: out.ID, Total: out.Total}, nil
}

func (c *Client) UpdateEstimate(ctx context.Context, estimateID string, draft commands.EstimateDraft) (*commands.EstimateReceipt, error) {
	var out estimateResponse
	if err := c.do(ctx, http.MethodPut, "/estimates/"+estimateID, toPayload(draft), &out); err != nil {
		return nil, errs.Wrap(err, "update estimate")
	}
	if out.ID == "" {
		out.ID = estimateID
	}
	return &commands.EstimateReceipt{ID: out.ID, Total: out.Total}, nil
}

func (c *Client) DeleteEstimate(ctx context.Context, estimateID string) error {
	return errs.Wrap(c.do(ctx, http.MethodDelete, "/estimates/"+estimateID, nil, nil), "delete estimate")
}

func (c *Client) MarkSent(ctx context.Context, estimateID string) error {
	return errs.Wrap(c.do(ctx, http.MethodPost, "/estimates/"+estimateID+"/send", nil, nil), "mark estimate sent")
}

func (c *Client) UpdateStatus(ctx context.Context, estimateID string, action quotation.Action) error {
	status := "Rejected"
	if action == quotation.ActionApprove {
		status = "Accepted"
	}
	err := c.do(ctx, http.MethodPost, "/estimates/"+estimateID+"/status", statusPayload{Status: status}, nil)
	return errs.Wrap(err, "update estimate status")
}

// do sends one request, retrying once with a fresh token on 401.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	err := c.attempt(ctx, method, path, in, out)
	if errs.Is(err, errUnauthorized) {
		c.session.Invalidate()
		err = c.attempt(ctx, method, path, in, out)
	}
	return err
}

func (c *Client) attempt(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "rate limiter wait")
	}
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "request failed"), errs.ErrExternalProvider)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return commands.ErrEstimateGone
	case resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(errs.Newf("%s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet))), errs.ErrExternalProvider)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode response"), errs.ErrExternalProvider)
	}
	return nil
}

func toPayload(d commands.EstimateDraft) estimatePayload {
	items := make([]lineItemPayload, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, lineItemPayload{
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Qty,
			ItemID:      it.ItemRef,
		})
	}
	return estimatePayload{
		Reference: d.Reference,
		Customer: customerPayload{
			Name:    d.Customer.Name,
			Email:   d.Customer.Email,
			Phone:   d.Customer.Phone,
			Company: d.Customer.Company,
		},
		LineItems: items,
		Notes:     d.Memo,
	}
}
