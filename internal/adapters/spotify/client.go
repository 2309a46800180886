// Package spotify provides the podcast catalog adapter: show lookup by name
// and episode listings, authenticated with the client-credentials flow.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/Agnik7/SuurAI/internal/core/domain"
	"github.com/Agnik7/SuurAI/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	tokenURL       = "https://accounts.spotify.com/api/token"
	episodeLimit   = 50
)

// Client is an HTTP client for the Spotify catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ports.PodcastCatalog = (*Client)(nil)

// NewClient constructs a catalog client around an existing HTTP client,
// typically one that already injects credentials. Used directly in tests.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// NewAuthenticatedClient constructs a catalog client whose requests carry
// tokens from the client-credentials flow. Token refresh is handled by the
// oauth2 transport.
func NewAuthenticatedClient(ctx context.Context, clientID string, clientSecret string) *Client {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return NewClient(cfg.Client(ctx), defaultBaseURL)
}

// PodcastByName resolves a show by name and returns it with up to 50
// episodes. Returns domain.ErrNotFound when no show matches.
func (c *Client) PodcastByName(ctx context.Context, name string) (domain.PodcastDetail, error) {
	show, err := c.searchShow(ctx, name)
	if err != nil {
		return domain.PodcastDetail{}, err
	}

	episodes, err := c.showEpisodes(ctx, show.ID, show.Name)
	if err != nil {
		return domain.PodcastDetail{}, err
	}

	return domain.PodcastDetail{
		Podcast:  mapShowToDomain(show),
		Episodes: episodes,
	}, nil
}

func (c *Client) searchShow(ctx context.Context, name string) (spotifyShow, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return spotifyShow{}, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}
	query := searchURL.Query()
	query.Set("q", name)
	query.Set("type", "show")
	query.Set("limit", "1")
	searchURL.RawQuery = query.Encode()

	var body struct {
		Shows struct {
			Items []spotifyShow `json:"items"`
		} `json:"shows"`
	}
	if err := c.getJSON(ctx, searchURL.String(), &body); err != nil {
		return spotifyShow{}, err
	}

	if len(body.Shows.Items) == 0 {
		return spotifyShow{}, fmt.Errorf("spotify adapter: no show named %q: %w", name, domain.ErrNotFound)
	}
	return body.Shows.Items[0], nil
}

func (c *Client) showEpisodes(ctx context.Context, showID string, showName string) ([]domain.Episode, error) {
	episodesURL := fmt.Sprintf("%s/shows/%s/episodes?limit=%d&offset=0", c.baseURL, showID, episodeLimit)

	var body struct {
		Items []spotifyEpisode `json:"items"`
	}
	if err := c.getJSON(ctx, episodesURL, &body); err != nil {
		return nil, err
	}

	episodes := make([]domain.Episode, 0, len(body.Items))
	for _, item := range body.Items {
		episodes = append(episodes, mapEpisodeToDomain(item, showName))
	}
	return episodes, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("spotify adapter: %w", domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify adapter: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: decode error: %w", err)
	}
	return nil
}
