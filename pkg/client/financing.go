package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func financingPath(id int32) string {
	return fmt.Sprintf("/api/financiamentos/%d", id)
}

func installmentPath(financingID, installmentID int32) string {
	return fmt.Sprintf("/api/financiamentos/%d/parcelas/%d", financingID, installmentID)
}

// ListFinancings returns contracts, filtered by status when it is not empty
func (c *Client) ListFinancings(ctx context.Context, status string) ([]Financing, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var out []Financing
	if err := c.do(ctx, http.MethodGet, "/api/financiamentos", q, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFinancing(ctx context.Context, id int32) (*Financing, error) {
	var out Financing
	if err := c.do(ctx, http.MethodGet, financingPath(id), nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFinancing(ctx context.Context, in FinancingInput) (*Financing, error) {
	var out Financing
	if err := c.do(ctx, http.MethodPost, "/api/financiamentos", nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFinancing edits a contract. A stale in.Version fails with a 409 (see IsConflict).
func (c *Client) UpdateFinancing(ctx context.Context, id int32, in FinancingInput) (*Financing, error) {
	var out Financing
	if err := c.do(ctx, http.MethodPut, financingPath(id), nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFinancing(ctx context.Context, id int32) error {
	return c.do(ctx, http.MethodDelete, financingPath(id), nil, nil, nil, true)
}

func (c *Client) CancelFinancing(ctx context.Context, id int32) (*Financing, error) {
	var out Financing
	if err := c.do(ctx, http.MethodPost, financingPath(id)+"/cancelar", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Simulate(ctx context.Context, in FinancingInput) (*Simulation, error) {
	var out Simulation
	if err := c.do(ctx, http.MethodPost, "/api/financiamentos/simular", nil, in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// PayInstallment records a payment and returns the updated contract
func (c *Client) PayInstallment(ctx context.Context, financingID, installmentID int32, p Payment) (*Financing, error) {
	var out Financing
	if err := c.do(ctx, http.MethodPost, installmentPath(financingID, installmentID)+"/pagar", nil, p, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInstallment(ctx context.Context, financingID, installmentID int32, patch InstallmentPatch) (*Financing, error) {
	var out Financing
	if err := c.do(ctx, http.MethodPut, installmentPath(financingID, installmentID), nil, patch, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// PrepareReceipt reserves an upload URL for an installment's receipt
func (c *Client) PrepareReceipt(ctx context.Context, financingID, installmentID int32, filename, contentType string) (*ReceiptUpload, error) {
	body := map[string]string{"nome_arquivo": filename, "content_type": contentType}
	var out ReceiptUpload
	if err := c.do(ctx, http.MethodPost, installmentPath(financingID, installmentID)+"/comprovante", nil, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// PresentValue discounts the remaining installments at CDI or SELIC.
// asOf may be empty for today. It returns nil when nothing remains to be paid.
func (c *Client) PresentValue(ctx context.Context, id int32, useCDI bool, asOf string) (*PresentValue, error) {
	q := url.Values{"usar_cdi": {strconv.FormatBool(useCDI)}}
	if asOf != "" {
		q.Set("data_referencia", asOf)
	}
	var out *PresentValue
	if err := c.do(ctx, http.MethodGet, financingPath(id)+"/valor-presente", q, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
