package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	Payable    = "pagar"
	Receivable = "receber"
)

func accountsPath(kind string) (string, error) {
	switch kind {
	case Payable:
		return "/api/contas-pagar", nil
	case Receivable:
		return "/api/contas-receber", nil
	}
	return "", fmt.Errorf("unknown account kind %q", kind)
}

func (c *Client) ListAccounts(ctx context.Context, kind string, f AccountFilter) ([]Account, error) {
	path, err := accountsPath(kind)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	for k, v := range map[string]string{
		"status":      f.Status,
		"categoria":   f.Category,
		"data_inicio": f.From,
		"data_fim":    f.To,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	var out []Account
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAccount(ctx context.Context, kind string, a Account) (*Account, error) {
	path, err := accountsPath(kind)
	if err != nil {
		return nil, err
	}
	var out Account
	if err := c.do(ctx, http.MethodPost, path, nil, a, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// SettleAccount marks a payable paid or a receivable received. paidOn may be empty for today.
func (c *Client) SettleAccount(ctx context.Context, kind string, id int32, paidOn string) (*Account, error) {
	path, err := accountsPath(kind)
	if err != nil {
		return nil, err
	}
	action := "marcar-paga"
	if kind == Receivable {
		action = "marcar-recebida"
	}
	body := map[string]string{}
	if paidOn != "" {
		body["data_pagamento"] = paidOn
	}
	var out Account
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/%d/%s", path, id, action), nil, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAccount(ctx context.Context, kind string, id int32) error {
	path, err := accountsPath(kind)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, nil, nil, true)
}
