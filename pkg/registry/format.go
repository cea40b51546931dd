package registry

import (
	"strings"
	"unicode"
)

// FormatMaintainers renders a maintainer list for display. Entries are
// @-prefixed unless already prefixed and joined in original order.
func FormatMaintainers(maintainers []string) string {
	if len(maintainers) == 0 {
		return "No maintainers assigned"
	}

	formatted := make([]string, 0, len(maintainers))
	for _, m := range maintainers {
		if strings.HasPrefix(m, "@") {
			formatted = append(formatted, m)
		} else {
			formatted = append(formatted, "@"+m)
		}
	}

	return strings.Join(formatted, ", ")
}

// DisplayName returns the project's display name, defaulting to the
// key with underscores replaced by spaces and each word title-cased.
func DisplayName(key string, info ProjectInfo) string {
	if info.ProjectName != "" {
		return info.ProjectName
	}
	return titleCase(strings.ReplaceAll(key, "_", " "))
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
