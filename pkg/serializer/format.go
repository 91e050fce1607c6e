package serializer

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Format is the emission mode of a report.
type Format string

const (
	// FormatYAML writes the report listing as is.
	FormatYAML Format = "yaml"

	// FormatConfigMap embeds the report listing in a ConfigMap manifest.
	FormatConfigMap Format = "configmap"
)

// maxSuggestionDistance bounds how far a mistyped format may be from a supported one.
const maxSuggestionDistance = 3

// SupportedFormats returns the formats in the order they are documented.
func SupportedFormats() []Format {
	return []Format{FormatYAML, FormatConfigMap}
}

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatConfigMap:
		return false
	default:
		return true
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ParseFormat validates s as a Format. The error for an unknown value names
// the closest supported format when there is a plausible one.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsUnknown() {
		return f, nil
	}

	names := make([]string, 0, len(SupportedFormats()))
	for _, sf := range SupportedFormats() {
		names = append(names, sf.String())
	}

	if suggestion := suggestFormat(string(f)); suggestion != "" {
		return "", fmt.Errorf("unknown output format: %q, did you mean %q? valid formats are: %s",
			s, suggestion, strings.Join(names, ", "))
	}
	return "", fmt.Errorf("unknown output format: %q, valid formats are: %s", s, strings.Join(names, ", "))
}

func suggestFormat(s string) Format {
	if s == "" {
		return ""
	}
	best := Format("")
	bestDistance := maxSuggestionDistance + 1
	for _, f := range SupportedFormats() {
		if d := levenshtein.ComputeDistance(s, f.String()); d < bestDistance {
			best, bestDistance = f, d
		}
	}
	return best
}
