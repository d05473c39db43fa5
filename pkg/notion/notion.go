package notion

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the HTTP wrapper for the Notion REST API.
type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

// New creates a Notion client for the given integration token.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("notion API key is required")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{},
	}, nil
}

// WithBaseURL overrides the default API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

// WithAPIVersion overrides the Notion-Version header.
func (c *Client) WithAPIVersion(version string) *Client {
	if version != "" {
		c.apiVersion = version
	}
	return c
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}
