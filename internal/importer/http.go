package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Record is a created record as returned by the API.
type Record map[string]any

// HTTPCreator creates records by posting them to a running API.
type HTTPCreator struct {
	client *http.Client
	url    string
}

// NewHTTPCreator targets POST <baseURL>/<resource>.
func NewHTTPCreator(baseURL, resource string, client *http.Client) *HTTPCreator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCreator{
		client: client,
		url:    strings.TrimRight(baseURL, "/") + "/" + strings.Trim(resource, "/"),
	}
}

func (h *HTTPCreator) Create(ctx context.Context, payload map[string]any) (*Record, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", h.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("post %s: status %d: %s", h.url, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &rec, nil
}
