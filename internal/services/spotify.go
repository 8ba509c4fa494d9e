// Spotify implementation of [Authenticator] and [Forwarder]
//
// Endpoint paths follow https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/desertthunder/spotirelay/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	defaultRedirectURI = "http://127.0.0.1:8888/auth/callback"
)

// spotifyScopes are requested on every login: read-only access to exactly
// the data the relay forwards.
var spotifyScopes = []string{
	"user-read-private",
	"user-read-email",
	"user-top-read",
	"user-read-recently-played",
	"user-follow-read",
	"playlist-read-private",
	"playlist-read-collaborative",
}

// SpotifyService implements [Authenticator] and [Forwarder] for the Spotify
// Web API. It holds no per-user state; tokens arrive with each call.
type SpotifyService struct {
	config     *oauth2.Config
	httpClient *http.Client
	baseURL    string
}

// NewSpotifyService creates a Spotify service from the given credentials.
func NewSpotifyService(creds shared.SpotifyConfig) (*SpotifyService, error) {
	if creds.ClientID == "" {
		return nil, fmt.Errorf("%w: client_id", shared.ErrMissingCredentials)
	}

	if creds.ClientSecret == "" {
		return nil, fmt.Errorf("%w: client_secret", shared.ErrMissingCredentials)
	}

	redirectURI := creds.RedirectURI
	if redirectURI == "" {
		redirectURI = defaultRedirectURI
	}

	config := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       spotifyScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
			// Spotify wants client credentials base64-encoded in the
			// Authorization header of token requests.
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	return &SpotifyService{
		config:     config,
		httpClient: http.DefaultClient,
		baseURL:    spotifyBaseURL,
	}, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// AuthCodeURL returns the consent-screen URL for user login. show_dialog
// forces the approval prompt even for previously authorized users.
func (s *SpotifyService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.SetAuthURLParam("show_dialog", "true"))
}

// Exchange trades an authorization code for a token set.
func (s *SpotifyService) Exchange(ctx context.Context, code string) (*TokenSet, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: status %d", shared.ErrTokenRejected, retrieveErr.Response.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrTokenExchange, err)
	}

	return newTokenSet(token), nil
}

// Refresh mints a new access token from a refresh token.
func (s *SpotifyService) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	if refreshToken == "" {
		return nil, shared.ErrMissingRefreshToken
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	source := s.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}

	set := newTokenSet(token)
	if set.RefreshToken == "" {
		// Spotify omits the refresh token when it hasn't rotated
		set.RefreshToken = refreshToken
	}

	return set, nil
}

// Forward performs an authenticated GET against the Spotify API and returns
// the raw JSON body.
func (s *SpotifyService) Forward(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	if token == "" {
		return nil, shared.ErrNotAuthenticated
	}

	apiURL := s.baseURL + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: malformed response body", shared.ErrUpstream)
	}

	return json.RawMessage(body), nil
}

// newTokenSet converts an [oauth2.Token] into the relay's transport shape.
func newTokenSet(token *oauth2.Token) *TokenSet {
	expiresIn := token.ExpiresIn
	if expiresIn == 0 && !token.Expiry.IsZero() {
		expiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	return &TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
	}
}
