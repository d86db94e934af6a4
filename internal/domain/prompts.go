package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const systemPromptTemplate = "You are an experienced copywriter. Generate the %s for a website article."

//nolint:gochecknoglobals // fixed prompt table
var promptTemplates = map[Field]string{
	FieldTitle:           "Write a short, catchy headline about %s. Do not use quotes.",
	FieldDescription:     "Write an engaging description of two or three sentences about %s.",
	FieldContent:         "Write a well structured article about %s. Use plain paragraphs without markdown.",
	FieldMetaTitle:       "Write an SEO meta title under 60 characters about %s. Do not use quotes.",
	FieldMetaDescription: "Write an SEO meta description under 160 characters about %s.",
	FieldMetaKeywords:    "List 5 to 10 SEO keywords about %s separated by commas, without numbering.",
}

var listMarker = regexp.MustCompile(`^(?:[-•]|\d+[.)])\s*`) //nolint:gochecknoglobals // compiled once

var fieldLabels = map[Field]string{ //nolint:gochecknoglobals // fixed label table
	FieldTitle:           "title",
	FieldDescription:     "description",
	FieldContent:         "article body",
	FieldMetaTitle:       "SEO meta title",
	FieldMetaDescription: "SEO meta description",
	FieldMetaKeywords:    "SEO keywords",
}

// BuildPrompt renders the fixed template of field for topic.
func BuildPrompt(field Field, topic string) (Prompt, error) {
	template, ok := promptTemplates[field]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	topic = strings.TrimSpace(topic)

	return Prompt{
		Field:  field,
		Topic:  topic,
		System: fmt.Sprintf(systemPromptTemplate, fieldLabels[field]),
		User:   fmt.Sprintf(template, topic),
	}, nil
}

// normalizeKeywords turns a generated keyword list into "a, b, c".
func normalizeKeywords(text string) string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})

	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		keyword := strings.TrimSpace(listMarker.ReplaceAllString(strings.TrimSpace(part), ""))
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return strings.Join(keywords, ", ")
}
