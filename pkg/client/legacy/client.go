// Package legacy provides the client for the Analytics Cloud legacy (v3)
// API. Several resource families - imported datasets, connections,
// publications, wrangled datasets - plus a handful of workspace and person
// reads are only available on this older surface.
package legacy

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

	"github.com/aac-tools/aac-mcp-server/pkg/config"
)

// Resource is a decoded API payload with no fixed schema.
type Resource map[string]interface{}

// Client provides methods for interacting with the Analytics Cloud v3 API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new v3 API client from the static configuration.
// The legacy surface shares credentials with the current one.
func NewClient(cfg *config.StaticConfig) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.GetLegacyAPIURL(), "/"),
		token:      cfg.APIToken,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// do performs one API request and decodes the response body.
// A 404 response or an empty success body yields (nil, nil), matching the
// v4 client's treatment of missing resources.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (Resource, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s failed: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var result Resource
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Resource, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// ListWorkspaces returns all workspaces available to the current user.
func (c *Client) ListWorkspaces(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v3/workspaces", nil)
}

// GetCurrentPerson returns the authenticated user.
func (c *Client) GetCurrentPerson(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v3/people/current", nil)
}

// ListDatasetLibrary returns the dataset library filtered by the given
// dataset and ownership filters.
func (c *Client) ListDatasetLibrary(ctx context.Context, datasetsFilter, ownershipFilter string, schematized bool, limit int) (Resource, error) {
	query := url.Values{}
	query.Set("datasetsFilter", datasetsFilter)
	query.Set("ownershipFilter", ownershipFilter)
	query.Set("schematized", fmt.Sprintf("%t", schematized))
	query.Set("limit", fmt.Sprintf("%d", limit))
	return c.get(ctx, "/v3/importedDatasets/library", query)
}

// GetImportedDataset returns a specific imported dataset, or nil if it does
// not exist.
func (c *Client) GetImportedDataset(ctx context.Context, datasetID string) (Resource, error) {
	return c.get(ctx, "/v3/importedDatasets/"+url.PathEscape(datasetID), nil)
}

// ListConnections returns all connections.
func (c *Client) ListConnections(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v3/connections", nil)
}

// GetConnection returns a specific connection, or nil if it does not exist.
func (c *Client) GetConnection(ctx context.Context, connectionID string) (Resource, error) {
	return c.get(ctx, "/v3/connections/"+url.PathEscape(connectionID), nil)
}

// GetConnectionStatus returns the status of a connection.
func (c *Client) GetConnectionStatus(ctx context.Context, connectionID string) (Resource, error) {
	return c.get(ctx, "/v3/connections/"+url.PathEscape(connectionID)+"/status", nil)
}

// ListPublications returns publications for the current user, capped at
// limit entries.
func (c *Client) ListPublications(ctx context.Context, limit int) (Resource, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", limit))
	return c.get(ctx, "/v3/publications", query)
}

// GetPublication returns a specific publication, or nil if it does not
// exist. The embed parameter selects associated resources to include; pass
// an empty string for none.
func (c *Client) GetPublication(ctx context.Context, publicationID, embed string) (Resource, error) {
	query := url.Values{}
	query.Set("embed", embed)
	return c.get(ctx, "/v3/publications/"+url.PathEscape(publicationID), query)
}

// DeletePublication deletes a publication.
func (c *Client) DeletePublication(ctx context.Context, publicationID string) (Resource, error) {
	return c.do(ctx, http.MethodDelete, "/v3/publications/"+url.PathEscape(publicationID), nil, nil)
}

// ListWrangledDatasets returns all wrangled datasets.
func (c *Client) ListWrangledDatasets(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v3/wrangledDatasets", nil)
}

// GetWrangledDataset returns a specific wrangled dataset, or nil if it does
// not exist.
func (c *Client) GetWrangledDataset(ctx context.Context, wrangledDatasetID string) (Resource, error) {
	return c.get(ctx, "/v3/wrangledDatasets/"+url.PathEscape(wrangledDatasetID), nil)
}

// GetInputsForWrangledDataset returns the inputs feeding a wrangled dataset.
func (c *Client) GetInputsForWrangledDataset(ctx context.Context, wrangledDatasetID string) (Resource, error) {
	return c.get(ctx, "/v3/wrangledDatasets/"+url.PathEscape(wrangledDatasetID)+"/inputs", nil)
}
