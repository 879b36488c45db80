package parser

import (
	"regexp"
	"strings"

	"app/models"
)

// Sentence-shaped KPI patterns, tried in priority order per line. Each one
// encodes a phrasing the upstream generator has actually produced.
var (
	kpiGMVOrdersRe = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*EGP\s+GMV\s+from\s+(\d+)\s+(?:successful\s+)?orders?`)
	kpiAOVRe       = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*EGP\s+AOV`)

	kpiApprovalRe    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s*(?:payment\s+)?approval(?:\s+rate)?`)
	kpiApprovalAltRe = regexp.MustCompile(`(?i)approval(?:\s+rate)?\s*:\s*(\d+(?:\.\d+)?)\s*%`)

	kpiTipsRe    = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*EGP\s+(?:in\s+)?tips`)
	kpiTipsAltRe = regexp.MustCompile(`(?i)tips\s*:\s*([\d,]+(?:\.\d+)?)\s*EGP`)

	// Split-rate phrasing is recognized so the generic bullet pattern cannot
	// misread it, but it never becomes a KPI card. The line is left in the
	// pool for the insight stage.
	kpiSplitRateRe = regexp.MustCompile(`(?i)split\s+rate`)

	// Bulleted form: "• Label: 1,234 EGP ↑ 12%". The label vocabulary is
	// fixed; anything else on a bullet belongs to the chart or insight
	// stages.
	kpiBulletRe = regexp.MustCompile(`(?i)^\s*(?:•\s*|[-*]\s+)\**(GMV|Revenue|Orders|AOV|Units|Customers|Total\s+Sales|Tips)\**\s*:\s*([\d,]+(?:\.\d+)?)\s*(EGP|%|units?)?\s*(?:([↑↓])\s*([\d.]+)\s*%?\s*(.*))?$`)
)

// kpiSynonyms maps every attested metric phrasing to its canonical label.
var kpiSynonyms = map[string]string{
	"gmv":           "Revenue",
	"revenue":       "Revenue",
	"total sales":   "Revenue",
	"orders":        "Orders",
	"order":         "Orders",
	"aov":           "Avg Order",
	"avg order":     "Avg Order",
	"approval":      "Approval Rate",
	"approval rate": "Approval Rate",
	"tips":          "Tips",
	"tip":           "Tips",
	"units":         "Units",
	"unit":          "Units",
	"customers":     "Customers",
	"customer":      "Customers",
}

// normalizeKPILabel maps synonyms onto canonical metric names.
func normalizeKPILabel(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.Join(strings.Fields(key), " ")
	if canonical, ok := kpiSynonyms[key]; ok {
		return canonical
	}
	return strings.TrimSpace(label)
}

// normalizeKPIUnit collapses unit spellings; an absent unit means EGP, the
// currency every amount in the source reports is denominated in.
func normalizeKPIUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	switch {
	case u == "" || u == "egp":
		return "EGP"
	case u == "%" || u == "percent":
		return "%"
	case strings.Contains(u, "unit"):
		return "units"
	}
	return unit
}

// kpiStage scans line by line for metric-bearing sentences and bullets.
// Matching lines are removed from the pool entirely so they cannot be
// re-counted as insights. Duplicate labels are dropped, first match wins.
func kpiStage(r *models.ParsedResponse, text string) (string, interface{}) {
	var cards []models.KPICard
	seen := map[string]bool{}

	add := func(label, raw, unit string, trend *models.KPITrend) {
		canonical := normalizeKPILabel(label)
		if seen[canonical] {
			return
		}
		seen[canonical] = true
		card := models.KPICard{
			Label: canonical,
			Unit:  normalizeKPIUnit(unit),
			Trend: trend,
		}
		// Lenient degradation: an unparseable amount keeps the raw string.
		if v, ok := parseAmount(raw); ok {
			card.Value = v
		} else {
			card.Value = strings.TrimSpace(raw)
		}
		cards = append(cards, card)
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			kept = append(kept, line)
			continue
		}
		if !matchKPILine(line, add) {
			kept = append(kept, line)
		}
	}

	if len(cards) == 0 {
		return text, nil
	}
	r.KPICards = cards
	return strings.Join(kept, "\n"), cards
}

// matchKPILine tries the KPI patterns in priority order and reports whether
// the line was consumed.
func matchKPILine(line string, add func(label, raw, unit string, trend *models.KPITrend)) bool {
	if m := kpiGMVOrdersRe.FindStringSubmatch(line); m != nil {
		add("gmv", m[1], "EGP", nil)
		add("orders", m[2], "units", nil)
		return true
	}
	if m := kpiAOVRe.FindStringSubmatch(line); m != nil {
		add("aov", m[1], "EGP", nil)
		return true
	}
	if m := kpiApprovalRe.FindStringSubmatch(line); m != nil {
		add("approval rate", m[1], "%", nil)
		return true
	}
	if m := kpiApprovalAltRe.FindStringSubmatch(line); m != nil {
		add("approval rate", m[1], "%", nil)
		return true
	}
	if m := kpiTipsRe.FindStringSubmatch(line); m != nil {
		add("tips", m[1], "EGP", nil)
		return true
	}
	if m := kpiTipsAltRe.FindStringSubmatch(line); m != nil {
		add("tips", m[1], "EGP", nil)
		return true
	}
	if kpiSplitRateRe.MatchString(line) {
		// Deliberate exclusion: split rate is noise here, insight at best.
		return false
	}
	if m := kpiBulletRe.FindStringSubmatch(line); m != nil {
		var trend *models.KPITrend
		if m[4] != "" {
			direction := models.TrendUp
			if m[4] == "↓" {
				direction = models.TrendDown
			}
			delta, _ := parseAmount(m[5])
			trend = &models.KPITrend{
				Direction: direction,
				Value:     delta,
				Label:     strings.TrimSpace(m[6]),
			}
		}
		add(m[1], m[2], m[3], trend)
		return true
	}
	return false
}
