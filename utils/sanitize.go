package utils

import "github.com/microcosm-cc/bluemonday"

var (
	// ugc keeps the markup a post or comment body is allowed to carry.
	ugc = bluemonday.UGCPolicy()
	// strict strips all markup; used for titles, names and other
	// plain-text fields.
	strict = bluemonday.StrictPolicy()
)

// Sanitize cleans user-supplied HTML, keeping common formatting tags
// while removing anything executable.
func Sanitize(input string) string {
	return ugc.Sanitize(input)
}

// SanitizeText strips every tag from a field that must stay plain text.
func SanitizeText(input string) string {
	return strict.Sanitize(input)
}
