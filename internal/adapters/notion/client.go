package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"pagesync/internal/application"
	"pagesync/internal/domain"
	"pagesync/internal/ports"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultVersion = "2022-06-28"

	// Maximum page size accepted by the block children endpoint
	pageSize = 100
)

// Client implements ports.PageService against the Notion REST API
type Client struct {
	token      string
	baseURL    string
	version    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Ensure Client implements PageService
var _ ports.PageService = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithVersion sets the Notion-Version header
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Notion client. An empty token is a configuration error.
func NewClient(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, &application.ConfigurationError{Setting: "integration token", Reason: "is not set"}
	}

	c := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		version:    DefaultVersion,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListChildren returns the child pages of parentID, following pagination to the end
func (c *Client) ListChildren(ctx context.Context, parentID string) ([]domain.ChildPage, error) {
	var children []domain.ChildPage
	cursor := ""

	for {
		q := url.Values{}
		q.Set("page_size", fmt.Sprint(pageSize))
		if cursor != "" {
			q.Set("start_cursor", cursor)
		}
		endpoint := fmt.Sprintf("%s/blocks/%s/children?%s", c.baseURL, url.PathEscape(parentID), q.Encode())

		var resp blockList
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
			return nil, err
		}

		for _, b := range resp.Results {
			if b.Type != "child_page" || b.ChildPage == nil {
				continue
			}
			children = append(children, domain.ChildPage{
				ID:    b.ID,
				Title: b.ChildPage.Title,
				URL:   domain.PageURL(b.ID),
			})
		}

		if !resp.HasMore || resp.NextCursor == "" {
			return children, nil
		}
		cursor = resp.NextCursor
	}
}

// CreateChildPage creates a page under parentID holding body in one plain-text code block
func (c *Client) CreateChildPage(ctx context.Context, parentID, title, body string) (*domain.ChildPage, error) {
	segments, err := domain.BlockSegments(body)
	if err != nil {
		return nil, err
	}

	req := newPageRequest(parentID, title, segments)
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page: %w", err)
	}

	var resp page
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/pages", payload, &resp); err != nil {
		return nil, err
	}

	pageURL := resp.URL
	if pageURL == "" {
		pageURL = domain.PageURL(resp.ID)
	}
	return &domain.ChildPage{ID: resp.ID, Title: title, URL: pageURL}, nil
}

// do sends one request and decodes a 2xx JSON body into out. Any other status
// is returned as an *APIError.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("notion request",
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
