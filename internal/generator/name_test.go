package generator

import (
	"regexp"
	"testing"
)

var (
	nameShapeRegex    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	fallbackNameRegex = regexp.MustCompile(`^plugin-\d+$`)
)

func TestDeriveName_Simple(t *testing.T) {
	name := DeriveName("Make a Welcome Bot")

	if name != "make-a-welcome-bot" {
		t.Errorf("unexpected name: %s", name)
	}
}

func TestDeriveName_SegmentLimitAndTruncation(t *testing.T) {
	name := DeriveName("A bot that welcomes new members with custom embeds and role assignment")

	if len(name) > 20 {
		t.Errorf("name exceeds 20 characters: %q (%d)", name, len(name))
	}

	if name == "" {
		t.Error("name must not be empty")
	}

	if !nameShapeRegex.MatchString(name) {
		t.Errorf("name has invalid shape: %q", name)
	}
}

func TestDeriveName_PunctuationOnlyFallsBack(t *testing.T) {
	name := DeriveName("!!!???")

	if !fallbackNameRegex.MatchString(name) {
		t.Errorf("expected plugin-<millis> fallback, got %q", name)
	}
}

func TestDeriveName_EmptyPromptFallsBack(t *testing.T) {
	name := DeriveName("")

	if !fallbackNameRegex.MatchString(name) {
		t.Errorf("expected plugin-<millis> fallback, got %q", name)
	}
}

func TestDeriveName_CollapsesHyphenRuns(t *testing.T) {
	name := DeriveName("auto --- mod  plugin")

	if name != "auto-mod-plugin" {
		t.Errorf("unexpected name: %s", name)
	}
}

func TestDeriveName_ShapeInvariant(t *testing.T) {
	prompts := []string{
		"ban users who spam links",
		"Träck émoji reactions!",
		"  leading and trailing   ",
		"one",
		"a b c d e f g h i j k l",
		"UPPER case ONLY",
		"123 456 789",
		"--already-hyphenated--",
	}

	for _, prompt := range prompts {
		name := DeriveName(prompt)

		if name == "" {
			t.Errorf("empty name for prompt %q", prompt)
			continue
		}

		if len(name) > 20 {
			t.Errorf("name too long for prompt %q: %q", prompt, name)
		}

		if !nameShapeRegex.MatchString(name) && !fallbackNameRegex.MatchString(name) {
			t.Errorf("invalid name shape for prompt %q: %q", prompt, name)
		}
	}
}
