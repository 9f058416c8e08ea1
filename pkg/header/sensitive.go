package header

import "strings"

// RedactedValue replaces the value of a sensitive header in logs.
const RedactedValue = "***REDACTED***"

// sensitiveNames carry credentials and must not be logged verbatim.
var sensitiveNames = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
	"X-Auth-Token",
}

// IsSensitive reports whether name is a credential-bearing header.
func IsSensitive(name string) bool {
	for _, s := range sensitiveNames {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
