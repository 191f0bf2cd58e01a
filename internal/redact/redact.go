// Package redact provides utilities for redacting sensitive information
// from strings before they are logged. Error messages that bubble up from
// the database driver can carry connection strings, SQL fragments, and user
// email addresses; this package scrubs them so log output stays safe to
// ship to external aggregators.
package redact

import "regexp"

// Redaction placeholders
const (
	redactedCredential = "[REDACTED_CREDENTIAL]"
	redactedEmail      = "[REDACTED_EMAIL]"
	redactedSQL        = "[REDACTED_SQL]"
)

// Precompiled regex patterns
var (
	// Database connection strings with embedded credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql)://[^@\s]+@`)

	// Email addresses (user data; must not land in logs verbatim)
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// SQL statements leaked into driver error messages
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()=$]+(?:FROM|INTO|SET)\b[\s\w,*()=$'"]*`,
	)
)

// String redacts sensitive patterns from the given string.
func String(s string) string {
	s = dbConnRegex.ReplaceAllString(s, redactedCredential+"@")
	s = sqlRegex.ReplaceAllString(s, redactedSQL)
	s = emailRegex.ReplaceAllString(s, redactedEmail)
	return s
}

// Error redacts sensitive patterns from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
