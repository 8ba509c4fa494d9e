package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/desertthunder/spotirelay/internal/shared"
)

// BearerToken extracts the bearer credential from the Authorization header.
//
// Every protected endpoint calls this guard before any forwarding happens;
// a missing or malformed header wraps [shared.ErrInvalidAuthHeader].
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("%w: missing Authorization header", shared.ErrInvalidAuthHeader)
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", fmt.Errorf("%w: expected Bearer scheme", shared.ErrInvalidAuthHeader)
	}

	return token, nil
}
