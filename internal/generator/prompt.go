package generator

import (
	"fmt"
	"sort"
	"strings"
)

// instructions shared by every code-producing prompt: the model must carry
// structured fields inside plain text using the marker protocol
const markerFormatInstructions = `Response format:
- Wrap short usage instructions for the server admin in [6] markers: [6]usage here[6]
- Wrap the complete cog source code in [2] markers: [2]code here[2]
- If the plugin needs more than one file, give each file name in numbered [4.N] markers: [4.1]main.py[4.1] [4.2]config.json[4.2]
- Do not use markdown code fences, only the bracket markers
- Output nothing outside the markers`

// asks the model whether clarifying details are needed before generating.
// A response without [3] tokens means the model is ready to generate.
func buildDetailProbePrompt(message string) string {
	var builder strings.Builder

	builder.WriteString("You are an assistant that writes Discord bot plugins (discord.py cogs) for the Sycord bot.\n\n")
	builder.WriteString("The user wants the following plugin:\n\n")
	builder.WriteString(message)
	builder.WriteString("\n\n")
	builder.WriteString("Decide whether you need concrete details from the user before you can write working code ")
	builder.WriteString("(IDs, channel names, message texts, role names and similar).\n")
	builder.WriteString("- If you need details, list up to 6 short kebab-case detail tokens, each introduced by the literal marker [3]. ")
	builder.WriteString("Example: [3]welcome-channel-id[3]welcome-message-text\n")
	builder.WriteString("- If the request is specific enough already, reply with the single word READY and no [3] markers.\n")
	builder.WriteString("Output nothing else.")

	return builder.String()
}

// composes the full generation prompt for New and DetailsProvided modes
func buildGenerationPrompt(message string, details map[string]string) string {
	var builder strings.Builder

	builder.WriteString("You are an assistant that writes Discord bot plugins (discord.py cogs) for the Sycord bot.\n\n")
	builder.WriteString("Write a complete, working cog for the following request:\n\n")
	builder.WriteString(message)
	builder.WriteString("\n\n")

	if len(details) > 0 {
		builder.WriteString("The user provided these details:\n")

		// stable ordering so identical requests produce identical prompts
		keys := make([]string, 0, len(details))
		for key := range details {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			builder.WriteString(fmt.Sprintf("- %s: %s\n", key, details[key]))
		}

		builder.WriteString("\n")
	}

	builder.WriteString("Guidelines:\n")
	builder.WriteString("- Use discord.py 2.x cog conventions with an async setup(bot) entry point\n")
	builder.WriteString("- Keep the code self-contained and focused on the request\n")
	builder.WriteString("- Do not ask further questions, generate the code now\n\n")
	builder.WriteString(markerFormatInstructions)

	return builder.String()
}

// composes the follow-up prompt, embedding the previous code verbatim
func buildFollowUpPrompt(previousCode, message string) string {
	var builder strings.Builder

	builder.WriteString("You are an assistant that maintains Discord bot plugins (discord.py cogs) for the Sycord bot.\n\n")
	builder.WriteString("Here is the current plugin code:\n\n")
	builder.WriteString(previousCode)
	builder.WriteString("\n\n")
	builder.WriteString("The user asks for this change:\n\n")
	builder.WriteString(message)
	builder.WriteString("\n\n")
	builder.WriteString("Guidelines:\n")
	builder.WriteString("- Return the complete updated cog, not a diff\n")
	builder.WriteString("- Preserve existing behavior the user did not ask to change\n\n")
	builder.WriteString(markerFormatInstructions)

	return builder.String()
}
