package twd

import (
	"regexp"
	"strings"

	"github.com/sig-0/twdrates/storage/types"
)

// numeralRegex matches the first integer or integer.fraction numeral
var numeralRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// sanitizeNumeric pulls the first numeral out of a cell fragment that
// may carry a label prefix (ex. "本行即期買入31.5280" -> "31.5280").
// Empty input yields the sentinel, input without any numeral is
// returned trimmed
func sanitizeNumeric(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return types.Sentinel
	}

	if match := numeralRegex.FindString(trimmed); match != "" {
		return match
	}

	return trimmed
}
