package logger

import (
	"log/slog"
	"strings"

	"github.com/yndnr/vecmap-go/pkg/header"
)

// Authorization schemes whose credentials are partially masked.
var authSchemes = []string{
	"Bearer ",
	"Basic ",
	"Digest ",
}

// Key patterns that are redacted even when they are not header names.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
}

// redactSensitive masks attributes that carry credentials. Header names
// known to header.IsSensitive are matched exactly; other keys by pattern.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		for _, scheme := range authSchemes {
			if len(strVal) > len(scheme) && strings.EqualFold(strVal[:len(scheme)], scheme) {
				return slog.String(a.Key, maskValue(strVal, strVal[:len(scheme)]))
			}
		}
		if strVal != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, header.RedactedValue)
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskValue keeps prefix plus the first and last three characters.
func maskValue(value, prefix string) string {
	body := value[len(prefix):]
	if len(body) <= 6 {
		return prefix + "***"
	}
	return prefix + body[:3] + "..." + body[len(body)-3:]
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	if header.IsSensitive(key) {
		return true
	}
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
