package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response with the given status code. Token-bearing
// responses must not be cached, so Cache-Control headers are always set.
func writeJSON(w http.ResponseWriter, code int, v any) {
	noCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// noCache sets the Cache-Control and Pragma headers to prevent caching.
func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
