package parser

import (
	"fmt"
	"regexp"
	"strings"

	"app/models"
)

var (
	// alertHeaderRe matches an "ALERTS" block header, with an optional
	// parenthetical qualifier ("ALERTS (last 7 days):").
	alertHeaderRe = regexp.MustCompile(`(?i)^\s*#{0,3}\s*\**\s*(?:⚠️\s*)?alerts?\s*(?:\([^)]*\))?\s*\**\s*:?\s*$`)

	// alertLineRe: "<item>: <n> qty vs <avg> avg ↓15% → <action>".
	alertLineRe = regexp.MustCompile(`(?i)^(.+?)\s*:\s*([\d,]+(?:\.\d+)?)\s*(?:qty|units)?\s*vs\s*([\d,]+(?:\.\d+)?)\s*avg\s*\(?\s*([↑↓])\s*([\d.]+)\s*%\s*\)?\s*(?:→\s*(.+))?$`)
)

// alertStage consumes an ALERTS block. Well-shaped bullets become typed
// insights; malformed bullets inside the block still surface as generic
// warnings instead of being dropped. This stage runs before the residual
// insight stage so alert lines are never re-interpreted there.
func alertStage(r *models.ParsedResponse, text string) (string, interface{}) {
	lines := strings.Split(text, "\n")

	headerIdx := -1
	for i, line := range lines {
		if alertHeaderRe.MatchString(line) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return text, nil
	}

	var insights []models.InsightItem
	end := headerIdx + 1
	for ; end < len(lines); end++ {
		if !bulletRe.MatchString(lines[end]) {
			break
		}
		insights = append(insights, parseAlertBullet(stripBullet(lines[end])))
	}
	if len(insights) == 0 {
		// A bare header with no bullets: strip it and move on.
		return strings.Join(append(lines[:headerIdx:headerIdx], lines[headerIdx+1:]...), "\n"), nil
	}

	r.Insights = append(r.Insights, insights...)
	remaining := append(lines[:headerIdx:headerIdx], lines[end:]...)
	return strings.Join(remaining, "\n"), insights
}

func parseAlertBullet(content string) models.InsightItem {
	content = strings.TrimSpace(content)
	m := alertLineRe.FindStringSubmatch(stripMarkup(content))
	if m == nil {
		return models.InsightItem{Text: stripMarkup(content), Type: models.InsightWarning}
	}

	item, qty, avg, arrow, pct, action := m[1], m[2], m[3], m[4], m[5], strings.TrimSpace(m[6])
	icon, typ := "📈", models.InsightInfo
	if arrow == "↓" {
		icon, typ = "⚠️", models.InsightWarning
	}

	txt := fmt.Sprintf("**%s**: %s vs %s avg (%s%s%%)", item, qty, avg, arrow, pct)
	if action != "" {
		txt += " — " + action
	}
	return models.InsightItem{Text: txt, Icon: icon, Type: typ}
}
