// Package marker implements the inline marker protocol used to carry
// structured fields inside a single unstructured completion text:
//
//	[1.1]name[1.1]   plugin display name
//	[2]code[2]       generated source code
//	[3]token         one requested detail token (no closing pair)
//	[4.N]file[4.N]   Nth file name for multi-file output
//	[6]usage[6]      usage instructions
//
// Completion output is untrusted free text, so every decode function is
// total: malformed or missing markers degrade to the raw text (for code) or
// an empty result, never an error.
package marker

import (
	"regexp"
	"strings"
)

const (
	NameMarker   = "[1.1]"
	CodeMarker   = "[2]"
	DetailMarker = "[3]"
	UsageMarker  = "[6]"

	// detail tokens beyond this are dropped; the prompt asks the model for
	// at most six but a non-compliant model may emit more
	MaxDetailTokens = 6
)

var fileMarkerRegex = regexp.MustCompile(`\[4\.(\d+)\](.*?)\[4\.\d+\]`)

// structured view of a decoded completion
type Decoded struct {
	Name         string
	Usage        string
	Code         string
	HasCode      bool
	DetailTokens []string
	Files        []string
}

// parses a raw completion into its structured fields
func Decode(text string) Decoded {
	code, hasCode := betweenFirstPair(text, CodeMarker)

	if !hasCode {
		// never silently drop model output
		code = text
	}

	return Decoded{
		Name:         ExtractName(text),
		Usage:        ExtractUsage(text),
		Code:         code,
		HasCode:      hasCode,
		DetailTokens: SplitDetailTokens(text),
		Files:        ExtractFileNames(text),
	}
}

// returns the content between the first [6] pair, or "" if absent
func ExtractUsage(text string) string {
	usage, _ := betweenFirstPair(text, UsageMarker)
	return usage
}

// returns the content between the first [2] pair; if the pair is absent or
// malformed the entire input is returned unchanged
func ExtractCode(text string) string {
	code, ok := betweenFirstPair(text, CodeMarker)
	if !ok {
		return text
	}

	return code
}

// returns the content between the first [1.1] pair, or "" if absent
func ExtractName(text string) string {
	name, _ := betweenFirstPair(text, NameMarker)
	return strings.TrimSpace(name)
}

// reports whether the completion is asking for clarifying details
func HasDetailTokens(text string) bool {
	return strings.Contains(text, DetailMarker)
}

// splits the completion on [3] markers and returns the detail tokens in
// order, capped at MaxDetailTokens
func SplitDetailTokens(text string) []string {
	if !HasDetailTokens(text) {
		return nil
	}

	segments := strings.Split(text, DetailMarker)

	// everything before the first [3] is preamble, not a token
	segments = segments[1:]

	tokens := make([]string, 0, len(segments))

	for _, segment := range segments {
		token := strings.TrimSpace(segment)
		if token == "" {
			continue
		}

		tokens = append(tokens, token)

		if len(tokens) == MaxDetailTokens {
			break
		}
	}

	return tokens
}

// returns the file names from [4.N] pairs in order of appearance
func ExtractFileNames(text string) []string {
	matches := fileMarkerRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	files := make([]string, 0, len(matches))

	for _, m := range matches {
		name := strings.TrimSpace(m[2])
		if name != "" {
			files = append(files, name)
		}
	}

	return files
}

// prepends the [1.1] name prefix to a raw completion for the final
// client-facing response
func PrefixName(name, text string) string {
	return NameMarker + name + NameMarker + "\n" + text
}

// wraps a user-facing message in a [6] pair so the dashboard renders it as
// a normal assistant message
func WrapUsage(message string) string {
	return UsageMarker + message + UsageMarker
}

// returns the payload between the first occurrence of marker and the next
// occurrence of the same marker; ok is false when no complete pair exists
func betweenFirstPair(text, marker string) (payload string, ok bool) {
	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}

	payloadStart := start + len(marker)

	end := strings.Index(text[payloadStart:], marker)
	if end == -1 {
		return "", false
	}

	return text[payloadStart : payloadStart+end], true
}
