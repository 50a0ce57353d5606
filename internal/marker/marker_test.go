package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUsageAndCode_RoundTrip(t *testing.T) {
	usage := "Load the cog with !load welcome"
	code := "import discord\nfrom discord.ext import commands\n"

	encoded := "[6]" + usage + "[6]\n[2]" + code + "[2]"

	assert.Equal(t, usage, ExtractUsage(encoded))
	assert.Equal(t, code, ExtractCode(encoded))
}

func TestExtractCode_FallbackToRawText(t *testing.T) {
	raw := "here is some prose without any code marker"

	assert.Equal(t, raw, ExtractCode(raw))
}

func TestExtractCode_UnclosedMarkerFallsBack(t *testing.T) {
	raw := "[2]def setup(bot): ..."

	// no closing pair, so the whole input comes back unchanged
	assert.Equal(t, raw, ExtractCode(raw))
}

func TestExtractCode_FirstPairWins(t *testing.T) {
	text := "[2]first[2] trailing [2]second[2]"

	assert.Equal(t, "first", ExtractCode(text))
}

func TestExtractUsage_AbsentIsEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractUsage("[2]code only[2]"))
}

func TestSplitDetailTokens(t *testing.T) {
	text := "[3]welcome-channel-id[3]welcome-message-text[3]role-to-assign"

	tokens := SplitDetailTokens(text)

	assert.Equal(t, []string{
		"welcome-channel-id",
		"welcome-message-text",
		"role-to-assign",
	}, tokens)
}

func TestSplitDetailTokens_IgnoresPreamble(t *testing.T) {
	text := "I need a few details first:[3]channel-id[3]message-text"

	tokens := SplitDetailTokens(text)

	assert.Equal(t, []string{"channel-id", "message-text"}, tokens)
}

func TestSplitDetailTokens_CappedAtSix(t *testing.T) {
	text := "[3]a[3]b[3]c[3]d[3]e[3]f[3]g[3]h"

	tokens := SplitDetailTokens(text)

	assert.Len(t, tokens, MaxDetailTokens)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, tokens)
}

func TestSplitDetailTokens_NoneIsNil(t *testing.T) {
	assert.Nil(t, SplitDetailTokens("[2]code[2]"))
}

func TestHasDetailTokens(t *testing.T) {
	assert.True(t, HasDetailTokens("please provide [3]channel-id"))
	assert.False(t, HasDetailTokens("[6]usage[6][2]code[2]"))
}

func TestExtractFileNames(t *testing.T) {
	text := "[4.1]welcome.py[4.1] and [4.2]config.json[4.2]"

	assert.Equal(t, []string{"welcome.py", "config.json"}, ExtractFileNames(text))
}

func TestExtractFileNames_AbsentIsNil(t *testing.T) {
	assert.Nil(t, ExtractFileNames("[2]single file output[2]"))
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "welcome-bot", ExtractName("[1.1]welcome-bot[1.1]\n[2]x[2]"))
}

func TestPrefixName(t *testing.T) {
	out := PrefixName("welcome-bot", "[2]code[2]")

	assert.Equal(t, "[1.1]welcome-bot[1.1]\n[2]code[2]", out)
	assert.Equal(t, "welcome-bot", ExtractName(out))
}

func TestDecode(t *testing.T) {
	text := "[1.1]mod-tools[1.1]\n[6]Use !purge[6]\n[2]print('hi')[2]"

	decoded := Decode(text)

	assert.Equal(t, "mod-tools", decoded.Name)
	assert.Equal(t, "Use !purge", decoded.Usage)
	assert.Equal(t, "print('hi')", decoded.Code)
	assert.True(t, decoded.HasCode)
	assert.Nil(t, decoded.DetailTokens)
}

func TestDecode_NoMarkersKeepsRawAsCode(t *testing.T) {
	decoded := Decode("plain response")

	assert.Equal(t, "plain response", decoded.Code)
	assert.False(t, decoded.HasCode)
	assert.Equal(t, "", decoded.Usage)
}

func TestWrapUsage(t *testing.T) {
	wrapped := WrapUsage("AI features are not configured")

	assert.Equal(t, "AI features are not configured", ExtractUsage(wrapped))
}
