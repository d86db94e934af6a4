// Package textclean normalizes generated text before it is stored in a content field.
package textclean

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // compiled once
var (
	smartQuotes = strings.NewReplacer(
		"“", "", "”", "", "„", "", "‟", "",
		"‘", "", "’", "", "‚", "", "‛", "",
		"«", "", "»", "",
	)
	markdownMarkers = strings.NewReplacer("*", "", "#", "")
	tildeBlock      = regexp.MustCompile(`~~~[\s\S]*?~~~`)
	extraNewlines   = regexp.MustCompile(`\n{3,}`)
)

// Clean strips markdown emphasis, smart quotes, ~~~ delimited blocks, excess
// blank lines and surrounding quotes. Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	// Every pass that changes s makes it shorter, so the fixed point is reached.
	for {
		next := clean(s)
		if next == s {
			return next
		}
		s = next
	}
}

func clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = smartQuotes.Replace(s)
	s = markdownMarkers.Replace(s)
	s = tildeBlock.ReplaceAllString(s, "")
	s = extraNewlines.ReplaceAllString(s, "\n\n")
	return strings.Trim(s, " \t\n\r\"'")
}
