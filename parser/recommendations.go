package parser

import (
	"regexp"
	"strconv"
	"strings"

	"app/models"
)

var (
	recHeaderRe = regexp.MustCompile(`(?im)^\s*#{0,3}\s*\**\s*(?:here['’]?s what i['’]?d do|what i['’]?d recommend|recommendations?|actions?|next steps?)\s*\**\s*:?\s*$`)

	recItemRe = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.+)$`)

	recImpactLabelRe = regexp.MustCompile(`(?i)(?:impact|uplift)\s*:?\s*([+~]?\s*[\d,]+(?:\.\d+)?\s*(?:EGP|%)[^\n.;)]*)`)
	recImpactParenRe = regexp.MustCompile(`(?i)\(([^)]*(?:impact|uplift|revenue)[^)]*)\)`)
)

// recommendationStage locates a recommendations header and reads the
// numbered list after it, keeping each item's original number.
//
// Known limitation, preserved as attested behavior: once a header is found,
// only the text *before* it remains for later stages, so insights, menu
// groups or tables written after a recommendations block are unreachable in
// the same call.
func recommendationStage(r *models.ParsedResponse, text string) (string, interface{}) {
	loc := recHeaderRe.FindStringIndex(text)
	if loc == nil {
		return text, nil
	}

	recs := parseNumberedItems(text[loc[1]:])
	if len(recs) == 0 {
		return text, nil
	}
	r.Recommendations = recs
	return text[:loc[0]], recs
}

// parseNumberedItems reads "<n>. <text>" items; an item runs until the next
// number or a blank line. Only the first line is kept as the item text, but
// the impact clause is searched across all of the item's lines.
func parseNumberedItems(text string) []models.RecommendationItem {
	var items []models.RecommendationItem
	itemOpen := false

	flushImpact := func(full string) {
		if len(items) == 0 {
			return
		}
		items[len(items)-1].Impact = extractImpact(full)
	}

	var fullText strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if m := recItemRe.FindStringSubmatch(line); m != nil {
			if itemOpen {
				flushImpact(fullText.String())
			}
			index, _ := strconv.Atoi(m[1])
			items = append(items, models.RecommendationItem{
				Index: index,
				Text:  strings.TrimSpace(m[2]),
			})
			fullText.Reset()
			fullText.WriteString(m[2])
			itemOpen = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			if itemOpen {
				flushImpact(fullText.String())
				itemOpen = false
			}
			continue
		}
		if itemOpen {
			fullText.WriteString("\n")
			fullText.WriteString(line)
		}
	}
	if itemOpen {
		flushImpact(fullText.String())
	}
	return items
}

// extractImpact lifts an impact/uplift/revenue clause out of an item's text.
func extractImpact(text string) string {
	if m := recImpactLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := recImpactParenRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
