package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"app/models"
)

// minInsightLen is the noise floor: shorter lines are discarded.
const minInsightLen = 10

var (
	// Shapes that belong to earlier stages. A bullet that still looks like a
	// KPI or an alert is not an insight, it is an unconsumed value line.
	insightKPIShapeRe   = regexp.MustCompile(`^[^:\n]+:\s*\**\s*[\d,]+(?:\.\d+)?`)
	insightAlertShapeRe = regexp.MustCompile(`(?i)vs\s*[\d,]+(?:\.\d+)?\s*avg`)
)

// insightIconTypes maps leading emoji sentinels to insight types.
var insightIconTypes = []struct {
	icon string
	typ  string
}{
	{"🔥", models.InsightHighlight},
	{"⚠️", models.InsightWarning},
	{"✅", models.InsightSuccess},
	{"🎯", models.InsightSuccess},
}

// insightStage turns the remaining bulleted lines into typed insights.
// KPI-shaped and alert-shaped bullets are rejected and stay in the pool;
// accepted and too-short lines are consumed.
func insightStage(r *models.ParsedResponse, text string) (string, interface{}) {
	var insights []models.InsightItem

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !bulletRe.MatchString(line) {
			kept = append(kept, line)
			continue
		}
		content := strings.TrimSpace(stripBullet(line))
		if insightKPIShapeRe.MatchString(content) || insightAlertShapeRe.MatchString(content) {
			kept = append(kept, line)
			continue
		}

		item := classifyInsight(content)
		if utf8.RuneCountInString(item.Text) < minInsightLen {
			// Noise: consumed but dropped.
			continue
		}
		insights = append(insights, item)
	}

	if len(insights) == 0 {
		return text, nil
	}
	r.Insights = append(r.Insights, insights...)
	return strings.Join(kept, "\n"), insights
}

// classifyInsight sniffs a leading emoji (stripped when recognized) or a
// warning keyword to pick the insight type.
func classifyInsight(content string) models.InsightItem {
	for _, it := range insightIconTypes {
		if strings.HasPrefix(content, it.icon) {
			return models.InsightItem{
				Text: strings.TrimSpace(strings.TrimPrefix(content, it.icon)),
				Icon: it.icon,
				Type: it.typ,
			}
		}
	}
	lower := strings.ToLower(content)
	if strings.Contains(lower, "warning") || strings.Contains(lower, "alert") {
		return models.InsightItem{Text: content, Type: models.InsightWarning}
	}
	return models.InsightItem{Text: content, Type: models.InsightInfo}
}
