package toolset

import (
	"errors"
	"sync"

	"github.com/aac-tools/aac-mcp-server/pkg/client/aac"
	"github.com/aac-tools/aac-mcp-server/pkg/client/legacy"
	"github.com/aac-tools/aac-mcp-server/pkg/config"
)

// ErrNotConfigured is returned when the Analytics Cloud credentials are
// absent and a tool requiring a backend call is invoked.
var ErrNotConfigured = errors.New("analytics cloud client not configured, set api_url and api_token to use this tool")

// CombinedClient holds the clients for both API generations. The clients are
// built lazily on first use; both are constructed together under the lock so
// a partially built set never escapes.
type CombinedClient struct {
	cfg *config.StaticConfig

	mu     sync.Mutex
	aac    *aac.Client
	legacy *legacy.Client
}

// NewCombinedClient creates a client holder for the given configuration.
// No network connections are made until a tool needs one.
func NewCombinedClient(cfg *config.StaticConfig) *CombinedClient {
	return &CombinedClient{cfg: cfg}
}

// ensure builds the full client set if any handle is missing.
func (c *CombinedClient) ensure() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aac != nil && c.legacy != nil {
		return nil
	}
	if !c.cfg.HasAPIConfig() {
		return ErrNotConfigured
	}

	c.aac = aac.NewClient(c.cfg)
	c.legacy = legacy.NewClient(c.cfg)
	return nil
}

// AAC returns the current (v4) API client, constructing the client set on
// first use.
func (c *CombinedClient) AAC() (*aac.Client, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	return c.aac, nil
}

// Legacy returns the legacy (v3) API client, constructing the client set on
// first use.
func (c *CombinedClient) Legacy() (*legacy.Client, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	return c.legacy, nil
}

// ValidateAACClient validates and returns a configured v4 API client.
// Returns ErrNotConfigured if credentials are absent.
func ValidateAACClient(client interface{}) (*aac.Client, error) {
	if combined, ok := client.(*CombinedClient); ok {
		return combined.AAC()
	}

	// Direct client, used by tests
	aacClient, ok := client.(*aac.Client)
	if !ok || aacClient == nil {
		return nil, ErrNotConfigured
	}
	return aacClient, nil
}

// ValidateLegacyClient validates and returns a configured v3 API client.
// Returns ErrNotConfigured if credentials are absent.
func ValidateLegacyClient(client interface{}) (*legacy.Client, error) {
	if combined, ok := client.(*CombinedClient); ok {
		return combined.Legacy()
	}

	// Direct client, used by tests
	legacyClient, ok := client.(*legacy.Client)
	if !ok || legacyClient == nil {
		return nil, ErrNotConfigured
	}
	return legacyClient, nil
}
