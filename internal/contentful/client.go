package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHost        = "cdn.contentful.com"
	DefaultEnvironment = "master"
	DefaultTimeout     = 10 * time.Second

	// Responses above this size are refused rather than buffered.
	maxResponseBytes = 16 << 20
)

// Provider is the request/response contract the content layer depends on.
type Provider interface {
	Entries(ctx context.Context, q Query) (*Collection, error)
	ContentTypes(ctx context.Context) ([]ContentType, error)
}

type Config struct {
	SpaceID     string
	AccessToken string
	Environment string
	Host        string
	// BaseURL overrides https://{Host} (used against local fakes).
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the Content Delivery API.
type Client struct {
	cfg     Config
	http    *http.Client
	baseURL string
}

func NewClient(cfg Config) *Client {
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	base := cfg.BaseURL
	if base == "" {
		base = "https://" + cfg.Host
	}
	return &Client{
		cfg:     cfg,
		http:    httpClient,
		baseURL: strings.TrimRight(base, "/"),
	}
}

// Query mirrors the getEntries parameters.
type Query struct {
	ContentType string
	Include     int
	Order       []string
	Limit       int
	Skip        int
	Locale      string
	// Filters are passed through verbatim, e.g. "fields.slug": "hello".
	Filters map[string]string
}

func (q Query) Values() url.Values {
	v := url.Values{}
	if q.ContentType != "" {
		v.Set("content_type", q.ContentType)
	}
	if q.Include > 0 {
		v.Set("include", strconv.Itoa(q.Include))
	}
	if len(q.Order) > 0 {
		v.Set("order", strings.Join(q.Order, ","))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Locale != "" {
		v.Set("locale", q.Locale)
	}
	for k, val := range q.Filters {
		v.Set(k, val)
	}
	return v
}

func (c *Client) Entries(ctx context.Context, q Query) (*Collection, error) {
	var col Collection
	if err := c.get(ctx, "/entries", q.Values(), &col); err != nil {
		return nil, err
	}
	col.Resolve()
	return &col, nil
}

func (c *Client) ContentTypes(ctx context.Context) ([]ContentType, error) {
	var col contentTypeCollection
	if err := c.get(ctx, "/content_types", url.Values{}, &col); err != nil {
		return nil, err
	}
	return col.Items, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s%s",
		c.baseURL, url.PathEscape(c.cfg.SpaceID), url.PathEscape(c.cfg.Environment), path)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("contentful: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contentful: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("contentful: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("contentful: decode %s: %w", path, err)
	}
	return nil
}

// IsUnknownContentType reports whether the space has no such content type.
func IsUnknownContentType(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, name := range apiErr.Details {
		if name == "unknownContentType" {
			return true
		}
	}
	return apiErr.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "unknown content type")
}
