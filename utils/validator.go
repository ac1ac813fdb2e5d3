// utils/validator.go - Input validation
package utils

import "strings"

// Direct (structured) submissions keep the amount range the old slash
// command enforced.
const (
	DirectPointMin = -128
	DirectPointMax = 127
)

// ValidateDirectPointRange checks a structured give/take amount.
func ValidateDirectPointRange(points int64) bool {
	return points >= DirectPointMin && points <= DirectPointMax
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
