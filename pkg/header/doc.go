// Package header provides an HTTP header map for small header sets.
//
// Map keeps header names in arrival order on top of a vecmap.Map, so
// a request with a dozen headers is searched with a short linear scan
// instead of being hashed. Names compare case-insensitively; each name
// holds its values in the order they were added.
//
// Usage:
//
//	h := header.New(16)
//	h.Add("Accept", "text/html")
//	h.Add("accept", "application/json")
//	h.Values("ACCEPT") // [text/html application/json]
//
// Credential-bearing headers (Authorization, Cookie, ...) are redacted when
// a Map is logged through log/slog.
package header
