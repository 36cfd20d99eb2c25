// Package redact scrubs credentials and personal data from text before it is
// logged or carried in an error. Text-generation backends echo request URLs,
// headers and sometimes fragments of the prompt in their error bodies, so
// every failure detail leaving the transport goes through String first.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

// maxDetailLength caps redacted output. Upstream bodies can be large HTML
// error pages.
const maxDetailLength = 512

type rule struct {
	pattern *regexp.Regexp
	// replacement may reference capture groups, e.g. "${1}".
	replacement string
}

// Order matters: the specific key shapes run before the generic key=value rule
// so their placeholders stay recognisable.
var rules = []rule{
	// Google API keys: "AIza" followed by 35 URL-safe characters.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// Credentials passed in query strings.
	{
		regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey|access_token|token)=)[^&\s"']+`),
		"${1}" + RedactedKeyPlaceholder,
	},
	// Authorization headers.
	{
		regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._\-~+/]+=*`),
		"${1}" + RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(x-goog-api-key["']?\s*[:=]\s*["']?)[^\s"',}]+`),
		"${1}" + RedactedKeyPlaceholder,
	},
	// JWT token pattern, three base64url segments.
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	// Generic "api_key: value" style pairs.
	{
		regexp.MustCompile(`(?i)((?:api[_-]?key|secret|password|passwd)(?:["'\s:=]+))[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}" + RedactedCredentialPlaceholder,
	},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String redacts sensitive information from the input string and truncates
// the result to a length suitable for logs.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	if len(result) > maxDetailLength {
		result = result[:maxDetailLength] + "..."
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
