package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// ErrNoAPIKey is returned when title lookups are attempted without a
// configured API key.
var ErrNoAPIKey = errors.New("youtube: no API key configured")

// Client fetches video metadata from the YouTube Data API v3.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a metadata client. An empty apiKey disables lookups
// rather than failing. A nil httpClient falls back to http.DefaultClient.
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// VideoTitle fetches the title for a video identifier. A single attempt is
// made, with no retries. An empty result set yields ("", nil): the video
// simply has no title available. Without an API key it short-circuits to
// ErrNoAPIKey before issuing any request.
func (c *Client) VideoTitle(ctx context.Context, videoID string) (string, error) {
	if !c.Enabled() {
		return "", ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", videoID)
	params.Set("key", c.apiKey)
	apiURL := c.baseURL + "/videos?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("youtube API error: status %d", resp.StatusCode)
	}

	var data videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(data.Items) == 0 {
		return "", nil
	}
	return data.Items[0].Snippet.Title, nil
}
