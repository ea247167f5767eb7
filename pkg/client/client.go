// Package client is a Go client for the Star Gestão REST API.
//
// A Client holds at most one Session. Login creates it, Logout clears it,
// and so does any 401 response. Requests are never retried; each call takes
// a context and can be cancelled by the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	// WakeUpThreshold is how long Login waits before reporting a cold-starting server
	WakeUpThreshold = 3 * time.Second

	maxErrorBody = 64 << 10
)

// Session is the authenticated state created by Login
type Session struct {
	Token    string
	Username string
}

type Client struct {
	baseURL         string
	httpClient      *http.Client
	wakeUpThreshold time.Duration
	onWakingUp      func()

	mu      sync.RWMutex
	session *Session
}

type Option func(*Client)

// WithHTTPClient replaces the default client, whose timeout is DefaultTimeout
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSession resumes a session saved from an earlier Login
func WithSession(s Session) Option {
	return func(c *Client) { c.session = &s }
}

// OnWakingUp registers fn to be called once when Login has not been answered
// within the wake-up threshold. The request keeps waiting.
func OnWakingUp(fn func()) Option {
	return func(c *Client) { c.onWakingUp = fn }
}

// WithWakeUpThreshold overrides WakeUpThreshold
func WithWakeUpThreshold(d time.Duration) Option {
	return func(c *Client) { c.wakeUpThreshold = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		httpClient:      &http.Client{Timeout: DefaultTimeout},
		wakeUpThreshold: WakeUpThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a copy of the current session, or nil when logged out
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Client) Logout() {
	c.setSession(nil)
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

type loginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Login authenticates and stores the new session on the client
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	if c.onWakingUp != nil && c.wakeUpThreshold > 0 {
		timer := time.AfterFunc(c.wakeUpThreshold, c.onWakingUp)
		defer timer.Stop()
	}

	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Detail: "login rejected"}
	}

	s := &Session{Token: resp.Token, Username: username}
	c.setSession(s)
	out := *s
	return &out, nil
}

// do sends one request. body is encoded as JSON when not nil and out is
// decoded from a 2xx response when not nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, auth bool) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token := c.token()
		if token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.Logout()
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
