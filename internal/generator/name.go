package generator

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	maxNameSegments = 5
	maxNameLength   = 20
)

// DeriveName produces a short slug for a new plugin from the user's prompt.
// The result contains only [a-z0-9-], never starts or ends with a hyphen,
// and is at most 20 characters. A prompt with no usable characters falls
// back to plugin-<unix millis> so the name is always non-empty and unique.
func DeriveName(prompt string) string {
	lower := strings.ToLower(prompt)

	var cleaned strings.Builder

	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			cleaned.WriteRune(r)
		case unicode.IsSpace(r):
			cleaned.WriteRune(' ')
		}
	}

	// collapse whitespace runs into single hyphens
	slug := strings.Join(strings.Fields(cleaned.String()), "-")

	// collapse hyphen runs left over from the prompt itself
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	slug = strings.Trim(slug, "-")

	// keep at most the first five segments
	segments := make([]string, 0, maxNameSegments)

	for _, segment := range strings.Split(slug, "-") {
		if segment == "" {
			continue
		}

		segments = append(segments, segment)

		if len(segments) == maxNameSegments {
			break
		}
	}

	slug = strings.Join(segments, "-")

	// hard cut, not word-aware
	if len(slug) > maxNameLength {
		slug = slug[:maxNameLength]
	}

	slug = strings.TrimSuffix(slug, "-")

	if slug == "" {
		return fmt.Sprintf("plugin-%d", time.Now().UnixMilli())
	}

	return slug
}
