package parser

import (
	"regexp"
	"strings"

	"app/models"
)

var (
	// menuLineRe: "(icon)? STAR (qualifier)?: item, item and item". The
	// category keyword is case-insensitive and may carry an emoji sentinel
	// and a free-text qualifier before the colon.
	menuLineRe = regexp.MustCompile(`(?i)^\s*(?:•\s*|[-*]\s+)?(?:[^\w\s]+\s*)?(STAR|PLOWHORSE|PUZZLE|DOG)S?\b[^:\n]*:\s*(.+)$`)

	menuItemSplitRe = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+`)
)

// menuStage classifies menu-engineering lines. Multiple lines naming the
// same category accumulate into one entry rather than producing duplicates.
func menuStage(r *models.ParsedResponse, text string) (string, interface{}) {
	byCategory := map[string]int{}
	var classes []models.MenuEngClass

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		m := menuLineRe.FindStringSubmatch(line)
		if m == nil {
			kept = append(kept, line)
			continue
		}
		category := strings.ToUpper(m[1])
		items := splitMenuItems(m[2])
		if len(items) == 0 {
			kept = append(kept, line)
			continue
		}
		if idx, ok := byCategory[category]; ok {
			classes[idx].Items = append(classes[idx].Items, items...)
		} else {
			byCategory[category] = len(classes)
			classes = append(classes, models.MenuEngClass{Category: category, Items: items})
		}
	}

	if len(classes) == 0 {
		return text, nil
	}
	r.MenuEngineering = classes
	return strings.Join(kept, "\n"), classes
}

func splitMenuItems(s string) []string {
	var items []string
	for _, part := range menuItemSplitRe.Split(s, -1) {
		if item := stripMarkup(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
