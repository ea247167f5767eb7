package client

import (
	"context"
	"net/http"
)

// Health reports whether the server and its database are up
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, nil, false)
}

func (c *Client) Info(ctx context.Context) (*Info, error) {
	var out Info
	if err := c.do(ctx, http.MethodGet, "/api/info", nil, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncSheet triggers the one-way export to the configured spreadsheet
func (c *Client) SyncSheet(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/sync/planilha", nil, nil, nil, true)
}
