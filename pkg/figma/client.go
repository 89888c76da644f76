// Package figma is a minimal client of the Figma REST API.
// see: https://www.figma.com/developers/api#files-endpoints
package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kpango/glg"
)

// DefaultBaseURL is the API root.
const DefaultBaseURL = "https://api.figma.com/v1"

// ErrAPI wraps every non-successful API answer.
var ErrAPI = errors.New("figma api error")

// Client talks to the API on behalf of a single file.
type Client struct {
	baseURL string
	token   string
	fileKey string
	nodeID  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets http client used for all requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a client for file fileKey scoped to node nodeID.
func NewClient(token, fileKey, nodeID string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		fileKey: fileKey,
		nodeID:  nodeID,
		http:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FileKey returns key of the file this client is scoped to.
func (c *Client) FileKey() string {
	return c.fileKey
}

// File fetches the file export.
func (c *Client) File(ctx context.Context) (*FileExport, error) {
	query := url.Values{}
	if c.nodeID != "" {
		query.Set("ids", c.nodeID)
	}

	data, err := c.get(ctx, c.apiURL("files", query), true)
	if err != nil {
		return nil, err
	}

	result, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", c.fileKey, err)
	}

	glg.Infof("figma: file %q has %d components in %d sets", result.Name, len(result.Components), len(result.ComponentSets))

	return result, nil
}

// ImageLocators asks the API to render ids as SVG and returns id -> url.
// Ids the API could not render are absent from the result.
func (c *Client) ImageLocators(ctx context.Context, ids []string) (map[string]string, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("format", "svg")

	data, err := c.get(ctx, c.apiURL("images", query), true)
	if err != nil {
		return nil, err
	}

	var resp imageResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding images response: %w", err)
	}

	if resp.Err != nil && *resp.Err != "" {
		return nil, fmt.Errorf("%w: images: %s", ErrAPI, *resp.Err)
	}

	result := make(map[string]string, len(resp.Images))
	for id, u := range resp.Images {
		if u == nil || *u == "" {
			continue
		}

		result[id] = *u
	}

	return result, nil
}

// RawMarkup downloads a rendered image. Rendered images are public, so no token is sent.
func (c *Client) RawMarkup(ctx context.Context, u string) (string, error) {
	data, err := c.get(ctx, u, false)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (c *Client) apiURL(endpoint string, query url.Values) string {
	result := fmt.Sprintf("%s/%s/%s", c.baseURL, endpoint, c.fileKey)
	if len(query) > 0 {
		result += "?" + query.Encode()
	}

	return result
}

func (c *Client) get(ctx context.Context, u string, authorize bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if authorize {
		req.Header.Set("X-Figma-Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", req.URL.Path, err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrAPI, req.URL.Path, resp.Status)
	}

	return data, nil
}
