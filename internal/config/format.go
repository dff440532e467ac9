package config

import (
	"fmt"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func NormalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf(
			"invalid output format %q (expected %s|%s)",
			raw,
			FormatText,
			FormatJSON,
		)
	}
}
