package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// restClient is the shared bearer-token JSON client the provider
// implementations are built on.
type restClient struct {
	baseUrl    *url.URL
	httpClient *http.Client
}

func newRestClient(apiURL string) *restClient {
	baseUrl, err := url.Parse(apiURL)
	if err != nil {
		panic(fmt.Sprintf("invalid provider base url %q: %v", apiURL, err))
	}
	return &restClient{
		baseUrl: baseUrl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *restClient) do(ctx context.Context, method, path, apiKey string, body, result interface{}) error {
	endpoint := c.baseUrl.JoinPath(path).String()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: extractErrorMessage(raw)}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return err
		}
	}
	return nil
}

// extractErrorMessage pulls the human-readable message out of the common
// provider error envelopes, falling back to the raw body.
func extractErrorMessage(raw []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
		if len(envelope.Errors) > 0 && envelope.Errors[0].Reason != "" {
			return envelope.Errors[0].Reason
		}
	}
	return string(raw)
}
