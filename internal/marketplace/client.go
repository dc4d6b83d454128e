package marketplace

import (
	"bytes"
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

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the root of the Marketplace v1 REST API.
const DefaultBaseURL = "https://authorizedbuyersmarketplace.googleapis.com/v1/"

const userAgent = "marketplace-samples-go/1.0"

// APIClient talks to the Marketplace API. Its services group the operations by
// resource collection.
type APIClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *logrus.Logger

	Clients           *ClientsService
	ClientUsers       *ClientUsersService
	Proposals         *ProposalsService
	Deals             *DealsService
	FinalizedDeals    *FinalizedDealsService
	AuctionPackages   *AuctionPackagesService
	PublisherProfiles *PublisherProfilesService
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient) error

// WithBaseURL points the client at another API root, e.g. a local playground.
func WithBaseURL(raw string) ClientOption {
	return func(c *APIClient) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", raw, err)
		}
		c.baseURL = u
		return nil
	}
}

// WithLogger enables request logging at debug level.
func WithLogger(l *logrus.Logger) ClientOption {
	return func(c *APIClient) error {
		c.logger = l
		return nil
	}
}

// NewClient returns an APIClient that sends requests through httpClient, which
// is expected to attach credentials (see package auth).
func NewClient(httpClient *http.Client, opts ...ClientOption) (*APIClient, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	base, _ := url.Parse(DefaultBaseURL)
	c := &APIClient{baseURL: base, httpClient: httpClient}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.Clients = &ClientsService{c: c}
	c.ClientUsers = &ClientUsersService{c: c}
	c.Proposals = &ProposalsService{c: c}
	c.Deals = &DealsService{c: c}
	c.FinalizedDeals = &FinalizedDealsService{c: c}
	c.AuctionPackages = &AuctionPackagesService{c: c}
	c.PublisherProfiles = &PublisherProfilesService{c: c}
	return c, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *APIClient) BaseURL() string { return c.baseURL.String() }

// APIError is a non-2xx answer of the API, decoded from its error envelope.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("marketplace API error %d (%s): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("marketplace API error %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is an APIError with HTTP status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// ListOptions are the common parameters of list calls.
type ListOptions struct {
	PageSize  int
	PageToken string
	Filter    string
	OrderBy   string
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	if o.PageToken != "" {
		q.Set("pageToken", o.PageToken)
	}
	if o.Filter != "" {
		q.Set("filter", o.Filter)
	}
	if o.OrderBy != "" {
		q.Set("orderBy", o.OrderBy)
	}
	return q
}

// Pages calls fetch with successive page tokens, starting from opts, until a
// page comes back without a next page token. fetch returns that token.
func Pages(ctx context.Context, opts ListOptions, fetch func(ctx context.Context, opts ListOptions) (string, error)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := fetch(ctx, opts)
		if err != nil {
			return err
		}
		if next == "" {
			return nil
		}
		opts.PageToken = next
	}
}

// do sends a JSON request to path (relative to the base URL, which may carry
// a ":verb" suffix) and decodes the JSON answer into out.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.String() + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"path":     path,
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		}).Debug("marketplace request")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil {
		if envelope.Error.Code == 0 {
			envelope.Error.Code = status
		}
		return envelope.Error
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Code: status, Message: msg}
}

func (c *APIClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *APIClient) post(ctx context.Context, path string, body, out any) error {
	if body == nil {
		body = Empty{}
	}
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *APIClient) patch(ctx context.Context, path, updateMask string, body, out any) error {
	var q url.Values
	if updateMask != "" {
		q = url.Values{"updateMask": {updateMask}}
	}
	return c.do(ctx, http.MethodPatch, path, q, body, out)
}
