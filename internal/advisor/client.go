package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	valve "Armatura/internal/valve"
)

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type AdviceRequest struct {
	Params  valve.Params `json:"params"`
	Context string       `json:"context,omitempty"`
}

type AdviceResponse struct {
	Recommendations  []string `json:"recommendations"`
	SuitableOverride *bool    `json:"suitable_override,omitempty"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Advise posts the full parameter record plus free-text context to the
// advisory service. Callers bound the call with ctx; any failure here must
// never invalidate the synchronous rule-based result.
func (c *Client) Advise(ctx context.Context, req AdviceRequest) (AdviceResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return AdviceResponse{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/advise", bytes.NewReader(b))
	if err != nil {
		return AdviceResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	res, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return AdviceResponse{}, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return AdviceResponse{}, fmt.Errorf("advisory service status %d", res.StatusCode)
	}

	var out AdviceResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return AdviceResponse{}, err
	}
	return out, nil
}
