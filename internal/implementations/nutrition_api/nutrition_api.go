package nutritionapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"nutritrack/internal/core/domain/nutrition"
)

const maxBodySize = 1 << 20

// Client talks to the nutrition REST backend.
type Client struct {
	httpClient http.Client
	baseURL    url.URL
}

func New(baseURL url.URL, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (c *Client) Summary(ctx context.Context, req nutrition.SummaryRequest) (nutrition.Summary, error) {
	u := c.baseURL.JoinPath("api", "nutrition", "summary")
	query := u.Query()
	query.Set("start_date", req.Range.StartDate())
	query.Set("end_date", req.Range.EndDate())
	query.Set("granularity", req.Granularity.String())
	u.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Add("accept", "application/json")
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", nutrition.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"%w: got unsuccessfull response (%d): %s",
			nutrition.ErrBackendUnavailable,
			resp.StatusCode,
			string(body),
		)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", nutrition.ErrBackendUnavailable)
	}
	return nutrition.Summary(body), nil
}
