// Package bcb reads benchmark interest rates from the Banco Central do
// Brasil SGS time series API.
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://api.bcb.gov.br/dados/serie"

// SGS series codes, both annualized percentages
var seriesCodes = map[domain.RateSource]int{
	domain.RateSourceCDI:   4389,
	domain.RateSourceSELIC: 432,
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type observation struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// FetchAnnualRate returns the latest observation of the series as a fraction (14.90 -> 0.149)
func (c *Client) FetchAnnualRate(ctx context.Context, source domain.RateSource) (float64, time.Time, error) {
	code, ok := seriesCodes[source]
	if !ok {
		return 0, time.Time{}, fmt.Errorf("unknown rate source %q", source)
	}

	url := fmt.Sprintf("%s/bcdata.sgs.%d/dados/ultimos/1?formato=json", c.baseURL, code)
	logger.ExternalServiceCall("bcb-sgs", "FetchAnnualRate", "source", source, "series", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, time.Time{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("bcb-sgs", "FetchAnnualRate", err)
		return 0, time.Time{}, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("API returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("bcb-sgs", "FetchAnnualRate", err)
		return 0, time.Time{}, err
	}

	var observations []observation
	if err := json.NewDecoder(resp.Body).Decode(&observations); err != nil {
		logger.ExternalServiceResult("bcb-sgs", "FetchAnnualRate", err)
		return 0, time.Time{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(observations) == 0 {
		return 0, time.Time{}, fmt.Errorf("series %d returned no observations", code)
	}

	last := observations[len(observations)-1]
	pct, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(last.Value), ",", ".", 1))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid rate value %q: %w", last.Value, err)
	}
	observed, err := time.Parse("02/01/2006", last.Date)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid observation date %q: %w", last.Date, err)
	}

	rate := pct.Div(decimal.NewFromInt(100)).InexactFloat64()
	logger.ExternalServiceResult("bcb-sgs", "FetchAnnualRate", nil, "source", source, "rate", rate, "date", last.Date)
	return rate, observed, nil
}
