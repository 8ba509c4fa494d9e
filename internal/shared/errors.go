package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrNotAuthenticated    = fmt.Errorf("not authenticated")
	ErrInvalidAuthHeader   = fmt.Errorf("invalid authorization header")
	ErrMissingRefreshToken = fmt.Errorf("missing refresh token")
	ErrTokenRejected       = fmt.Errorf("token request rejected")
	ErrTokenExchange       = fmt.Errorf("token exchange failed")
	ErrRefreshFailed       = fmt.Errorf("token refresh failed")

	// Upstream API errors
	ErrUpstream = fmt.Errorf("upstream request failed")
)
