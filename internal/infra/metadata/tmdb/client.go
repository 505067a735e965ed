// Package tmdb implements the MovieCatalog domain service against The Movie
// Database HTTP API. The catalog is read-through: nothing is cached or stored.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"marquee/config"
	"marquee/internal/domain/entity"
	"marquee/internal/domain/service"

	"github.com/pkg/errors"
)

// Client talks to the TMDB v3 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config) (service.MovieCatalog, error) {
	if cfg.TMDB == nil || cfg.TMDB.APIKey == "" {
		return nil, errors.New("tmdb api key is not configured")
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.TMDB.Timeout},
		baseURL:    cfg.TMDB.BaseURL,
		apiKey:     cfg.TMDB.APIKey,
	}, nil
}

// NowPlaying returns the first page of movies currently in theaters.
func (c *Client) NowPlaying(ctx context.Context) ([]*entity.Movie, error) {
	return c.fetchList(ctx, "/movie/now_playing", url.Values{
		"language": {"en-US"},
		"page":     {"1"},
	})
}

// Popular returns the first page of the provider's popularity ranking.
func (c *Client) Popular(ctx context.Context) ([]*entity.Movie, error) {
	return c.fetchList(ctx, "/movie/popular", url.Values{
		"language": {"en-US"},
		"page":     {"1"},
	})
}

// Search runs a title search against the provider.
func (c *Client) Search(ctx context.Context, query string) ([]*entity.Movie, error) {
	return c.fetchList(ctx, "/search/movie", url.Values{
		"query": {query},
	})
}

// Details fetches the full provider document for one movie, with credits and
// videos appended, and relays it verbatim.
func (c *Client) Details(ctx context.Context, movieID int64) (json.RawMessage, error) {
	endpoint := "/movie/" + strconv.FormatInt(movieID, 10)
	body, err := c.get(ctx, endpoint, url.Values{
		"append_to_response": {"credits,videos"},
	})
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// fetchList performs a GET and decodes the standard paged listing envelope.
func (c *Client) fetchList(ctx context.Context, endpoint string, params url.Values) ([]*entity.Movie, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(err, "failed to decode tmdb list response")
	}

	return list.toDomain(), nil
}

// get builds the request URL with the API key attached and returns the raw
// response body. Non-200 statuses become errors; the key never appears in
// error text.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tmdb request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach tmdb")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)

		return nil, errors.Errorf("tmdb returned status %d for %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tmdb response")
	}

	return body, nil
}
