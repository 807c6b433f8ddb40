package nuget

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/depviz/pkg/buildinfo"
	"github.com/matzehuels/depviz/pkg/cache"
	"github.com/matzehuels/depviz/pkg/integrations"
)

// DefaultBaseURL is the public NuGet registration endpoint.
const DefaultBaseURL = "https://api.nuget.org/v3/registration5-gz-semver2"

// Client looks up package dependencies in a NuGet registration API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the registry at baseURL (DefaultBaseURL
// if empty). Responses are cached in backend for cacheTTL.
func NewClient(backend cache.Cache, cacheTTL time.Duration, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{
		"User-Agent": buildinfo.UserAgent(),
		"Accept":     "application/json",
	}
	return &Client{
		Client:  integrations.NewClient(backend, "nuget", cacheTTL, headers),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the registry base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// IndexURL returns the registration index URL for a package id.
func (c *Client) IndexURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(strings.ToLower(id)) + "/index.json"
}

// FetchDependencies returns the direct dependency ids of package id.
//
// The result may be empty. Errors match [integrations.ErrStatus] for
// non-success responses ([integrations.ErrNotFound] for 404),
// [integrations.ErrNetwork] for transport failures, and carry the
// INVALID_RESPONSE code when the body is not the expected JSON.
func (c *Client) FetchDependencies(ctx context.Context, id string, refresh bool) ([]string, error) {
	var deps []string
	index := c.IndexURL(id)
	err := c.Cached(ctx, index, refresh, &deps, func() error {
		var data registrationResponse
		if err := c.Get(ctx, index, &data); err != nil {
			return err
		}
		deps = data.dependencyIDs()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deps, nil
}
