package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// PointCandidate is a parsed but not yet validated point message. The
// pledge name is the raw token from the message; canonicalization against
// the roster happens during validation.
type PointCandidate struct {
	PointChange int64
	Pledge      string
	Comment     string
}

// Matches a mandatory sign followed by an integer or decimal amount at the
// start of the message, e.g. "+10", "-5", "+1.25".
var pointPattern = regexp.MustCompile(`^([+-]\d+(?:\.\d+)?)(\s|$)`)

// ParsePointMessage parses a free-text point message of either shape:
//
//	+10 Eli Great job at recruitment
//	-5 to Matt for missed event
//
// The sign is mandatory. Decimal amounts are rounded half away from zero
// on the signed value (+10.5 -> +11, -10.5 -> -11). The comment may be
// empty. Every malformed input returns a *ParseError.
func ParsePointMessage(content string) (*PointCandidate, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &ParseError{Reason: "empty message"}
	}

	match := pointPattern.FindStringSubmatch(content)
	if match == nil {
		return nil, &ParseError{Reason: `message must start with a signed amount like "+10" or "-2.5"`}
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil, &ParseError{Reason: "invalid point amount: " + match[1]}
	}

	rounded := math.Round(value)
	if rounded >= math.MaxInt64 || rounded <= math.MinInt64 {
		return nil, &ParseError{Reason: "point amount out of range"}
	}
	points := int64(rounded)

	rest := strings.TrimSpace(content[len(match[1]):])
	name, comment := splitFirstToken(rest)
	if strings.EqualFold(name, "to") {
		name, comment = splitFirstToken(comment)
	}
	if name == "" {
		return nil, &ParseError{Reason: "missing pledge name after the amount"}
	}

	if first, remainder := splitFirstToken(comment); strings.EqualFold(first, "for") {
		comment = remainder
	}

	return &PointCandidate{
		PointChange: points,
		Pledge:      name,
		Comment:     comment,
	}, nil
}

// splitFirstToken splits off the first whitespace-delimited token and
// returns it with the trimmed remainder.
func splitFirstToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}
