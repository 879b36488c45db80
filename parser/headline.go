package parser

import (
	"regexp"
	"strings"

	"app/models"
)

var (
	// headlineMarkerRe accepts "HEADLINE:", "## Headline: X", "**Headline:**
	// X" and the no-space form "Headline:X". Bold markers may wrap either
	// the label or label+colon.
	headlineMarkerRe = regexp.MustCompile(`(?im)^#{0,3}[ \t]*(?:\*\*)?[ \t]*headline[ \t]*(?:\*\*)?[ \t]*:[ \t]*(?:\*\*)?[ \t]*(.*)$`)

	// leadingBoldLineRe matches a line that is entirely one bold span.
	leadingBoldLineRe = regexp.MustCompile(`^\s*\*\*([^*\n]+)\*\*\s*$`)
)

// headlineStage extracts at most one headline. An explicit marker line wins;
// failing that, a lone bold line at the very start of the text counts. Only
// the first match is taken.
func headlineStage(r *models.ParsedResponse, text string) (string, interface{}) {
	if loc := headlineMarkerRe.FindStringSubmatchIndex(text); loc != nil {
		headline := stripMarkup(text[loc[2]:loc[3]])
		if headline != "" {
			r.Headline = headline
			return removeLineAt(text, loc[0], loc[1]), headline
		}
	}

	first, rest, hasRest := strings.Cut(text, "\n")
	if m := leadingBoldLineRe.FindStringSubmatch(first); m != nil {
		headline := strings.TrimSpace(m[1])
		if headline != "" {
			r.Headline = headline
			if hasRest {
				return rest, headline
			}
			return "", headline
		}
	}

	return text, nil
}

// removeLineAt drops text[start:end] together with its trailing newline.
func removeLineAt(text string, start, end int) string {
	if end < len(text) && text[end] == '\n' {
		end++
	}
	return text[:start] + text[end:]
}
