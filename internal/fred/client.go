package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/macroview/macro-dashboard/internal/model"
)

// Default client configuration
const (
	DefaultBaseURL = "https://api.stlouisfed.org/fred"
	DefaultTimeout = 15 * time.Second

	// MissingValueMarker is what the API returns for gaps in a series
	MissingValueMarker = "."

	observationDateLayout = "2006-01-02"
)

// Client talks to the FRED series observations API
type Client struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// KeyFunc, when set, supplies the API key per request. Lets the key be
	// changed in settings without rebuilding the client.
	KeyFunc func() string
}

// NewClient creates a FRED client with default endpoint and timeout
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Observations fetches the full observation history of a series, ascending by
// date, with missing markers dropped.
func (c *Client) Observations(ctx context.Context, seriesID string) (model.Series, error) {
	if strings.TrimSpace(seriesID) == "" {
		return model.Series{}, fmt.Errorf("missing series id")
	}

	apiKey := c.APIKey
	if c.KeyFunc != nil {
		apiKey = c.KeyFunc()
	}
	if strings.TrimSpace(apiKey) == "" {
		return model.Series{}, fmt.Errorf("missing FRED API key")
	}

	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	query := url.Values{}
	query.Set("series_id", seriesID)
	query.Set("api_key", apiKey)
	query.Set("file_type", "json")
	query.Set("sort_order", "asc")

	endpoint := strings.TrimRight(baseURL, "/") + "/series/observations?" + query.Encode()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Series{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return model.Series{}, fmt.Errorf("fred request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Series{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Series{}, fmt.Errorf("fred http %d: %s", resp.StatusCode, apiErrorMessage(raw))
	}

	type observation struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	}
	type respBody struct {
		Observations []observation `json:"observations"`
	}
	var decoded respBody
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return model.Series{}, fmt.Errorf("unmarshal response: %w", err)
	}

	series := model.Series{ID: seriesID}
	for _, obs := range decoded.Observations {
		if obs.Value == MissingValueMarker {
			continue
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		date, err := time.Parse(observationDateLayout, obs.Date)
		if err != nil {
			continue
		}
		series.Observations = append(series.Observations, model.Observation{
			Date:  date,
			Value: value,
		})
	}

	return series, nil
}

// apiErrorMessage extracts the API error message from an error body, falling
// back to the raw body
func apiErrorMessage(raw []byte) string {
	type apiError struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	}
	var decoded apiError
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.ErrorMessage != "" {
		return decoded.ErrorMessage
	}
	return string(raw)
}
