package extract

// Probes for generated text, shared by every text provider.
//
//nolint:gochecknoglobals // immutable probe definitions
var (
	MessageContent = StringAt("choices[0].message.content", "choices", 0, "message", "content")
	ChoiceText     = StringAt("choices[0].text", "choices", 0, "text")
	ChoiceString   = StringAt("choices[0]", "choices", 0)
	ResponseString = StringAt("response", "response")

	// ContentBlockText matches Anthropic style messages responses.
	ContentBlockText = StringAt("content[0].text", "content", 0, "text")

	// TopLevelText matches the custom endpoint contract {text}.
	TopLevelText = StringAt("text", "text")
)

// TextChain returns the default fallback chain for text responses.
func TextChain() Chain {
	return Chain{MessageContent, ChoiceText, ChoiceString, ResponseString}
}
