package security

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSearchQueryLength is the maximum number of runes in a search query
const MaxSearchQueryLength = 100

// Search query validation errors
var (
	ErrQueryTooLong     = errors.New("search query too long")
	ErrQueryInvalidChar = errors.New("search query contains invalid characters")
)

// dangerousPatterns flags input that looks like SQL or script injection
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(union|select|insert|update|delete|drop|create|alter|exec|execute)\b`),
	regexp.MustCompile(`(?i)\b(or|and)\s+\d+\s*=\s*\d+`),
	regexp.MustCompile(`(?i)\b(or|and)\s+['"].*['"]\s*=\s*['"].*['"]`),
	regexp.MustCompile(`(--|/\*|\*/)`),
	regexp.MustCompile(`(?i)\b(waitfor|benchmark|sleep)\b`),
	regexp.MustCompile(`(?i)(<script|</script|javascript:|vbscript:|onload=|onerror=)`),
}

// ValidateSearchQuery trims query and rejects input that is too long, looks
// like an injection attempt or contains characters outside the allowed set.
func ValidateSearchQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}

	if utf8.RuneCountInString(query) > MaxSearchQueryLength {
		return "", ErrQueryTooLong
	}

	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(query) {
			return "", ErrQueryInvalidChar
		}
	}

	for _, char := range query {
		if !isValidSearchChar(char) {
			return "", ErrQueryInvalidChar
		}
	}

	return query, nil
}

// isValidSearchChar allows letters, digits, spaces and the punctuation found
// in names and email addresses
func isValidSearchChar(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsNumber(char) ||
		char == ' ' || char == '-' || char == '_' || char == '.' ||
		char == '@' || char == '+' || char == '%' || char == '\''
}

// SanitizeSearchString escapes LIKE wildcards so they match literally.
// The result is meant for a LIKE clause with ESCAPE '\'.
func SanitizeSearchString(query string) string {
	if query == "" {
		return ""
	}

	query = strings.ReplaceAll(query, `\`, `\\`)
	query = strings.ReplaceAll(query, "%", `\%`)
	query = strings.ReplaceAll(query, "_", `\_`)

	return query
}
