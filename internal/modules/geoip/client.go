package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var ErrLookupFailed = errors.New("geoip lookup failed")

// Client calls an unauthenticated ip-api style endpoint. Responses are
// consumed defensively: providers disagree on field names and a malformed
// body must degrade to the fallback, never break the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type lookupResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
}

func (c *Client) CountryCode(ctx context.Context, ip string) (string, error) {
	url := c.baseURL + "/json/" + strings.TrimSpace(ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	if body.Status != "" && body.Status != "success" {
		return "", fmt.Errorf("%w: provider status %q", ErrLookupFailed, body.Status)
	}

	code := strings.TrimSpace(body.CountryCode)
	if code == "" {
		// some providers return a bare {"country": "MA"} shape
		code = strings.TrimSpace(body.Country)
	}
	if len(code) != 2 {
		return "", fmt.Errorf("%w: no usable country field", ErrLookupFailed)
	}
	return strings.ToUpper(code), nil
}
