package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// QueryDatabase fetches one page of a database query via POST /v1/databases/{id}/query.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryDatabaseRequest) (*QueryDatabaseResponse, error) {
	var resp QueryDatabaseResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/databases/%s/query", databaseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPage fetches a page via GET /v1/pages/{id}.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/pages/%s", pageID), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage patches page properties via PATCH /v1/pages/{id}.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/v1/pages/%s", pageID), req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListBlockChildren fetches the first page of direct children via GET /v1/blocks/{id}/children.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string) (*BlockList, error) {
	var list BlockList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/blocks/%s/children", blockID), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AppendBlockChildren appends children via PATCH /v1/blocks/{id}/children.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, children []Block) (*BlockList, error) {
	var list BlockList
	req := AppendBlockChildrenRequest{Children: children}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/v1/blocks/%s/children", blockID), req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	httpReq.Header.Set("Notion-Version", c.apiVersion)
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notion %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
		var errResp ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode notion %s %s response: %w", method, path, err)
	}
	return nil
}
