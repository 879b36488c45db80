package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"app/models"
)

// Thresholds inferred from real production samples. Do not tune.
const (
	chartMinPoints    = 3
	chartMaxPoints    = 8
	chartNameMinLen   = 2
	chartNameMaxLen   = 50
	chartNameMinLenT4 = 3
	chartNameTrunc    = 20

	// Values below this are usually stray percentages sitting next to an
	// "EGP" in an adjacent clause, not real amounts.
	chartMinPlausibleEGP = 100
)

// chartBlockWords are metric names that belong to the KPI stage; a candidate
// chart name containing one of them is rejected.
var chartBlockWords = []string{
	"gmv", "revenue", "orders", "order", "approval", "aov",
	"total", "sales", "tips", "average",
}

// chartBlockWordsExtended is the looser tier's larger blocklist.
var chartBlockWordsExtended = append([]string{
	"headline", "items", "units", "alert", "alerts",
	"recommendation", "summary", "insight",
}, chartBlockWords...)

var (
	egpValueRe = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*EGP`)

	// Tier 2: "<Name>: <number> EGP" anywhere in the text.
	chartTier2Re = regexp.MustCompile(`(?m)^\s*\**([^\n:*]{2,50}?)\**\s*:\s*([\d,]+(?:\.\d+)?)\s*EGP\b`)

	// Tier 3: ranked list, "1. Name - 1,200 EGP" / "2) Name: 800 units".
	chartTier3Re = regexp.MustCompile(`(?m)^\s*\d+[.)]\s*(.+?)\s*[-–:]\s*([\d,]+(?:\.\d+)?)\s*([A-Za-z%]+)?\s*$`)

	// Tier 4, loosest: tolerates stray bold markers around the name.
	chartTier4Re = regexp.MustCompile(`(?m)\**([A-Za-z][^:\n*]{1,48})\**\s*:\s*\**\s*([\d,]+(?:\.\d+)?)\s*(EGP|GMV)\b`)
)

// chartCollector accumulates points across tiers with case-insensitive
// first-occurrence-wins dedup on the untruncated name.
type chartCollector struct {
	points []models.ChartDataPoint
	seen   map[string]bool
}

func (c *chartCollector) add(name string, value float64, label string) {
	key := strings.ToLower(name)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.points = append(c.points, models.ChartDataPoint{
		Name:  truncateName(name),
		Value: value,
		Label: label,
	})
}

func (c *chartCollector) enough() bool { return len(c.points) >= chartMinPoints }

// chartStage collects named numeric magnitudes through four increasingly
// loose tiers; later tiers only run while fewer than three distinct names
// have been found. The chart is discarded entirely below three points.
// The stage claims no text: leftover value lines are filtered out again by
// the residual insight stage's KPI-shape rejection.
func chartStage(r *models.ParsedResponse, text string) (string, interface{}) {
	c := &chartCollector{seen: map[string]bool{}}

	chartTier1(c, text)
	if !c.enough() {
		chartTier2(c, text)
	}
	if !c.enough() {
		chartTier3(c, text)
	}
	if !c.enough() {
		chartTier4(c, text)
	}

	if !c.enough() {
		return text, nil
	}
	if len(c.points) > chartMaxPoints {
		c.points = c.points[:chartMaxPoints]
	}
	r.ChartData = c.points
	return text, c.points
}

// chartTier1 is line-scoped: on every bulleted line, the text before the
// first colon is the candidate name and the largest plausible "<n> EGP"
// amount on the line is its value.
func chartTier1(c *chartCollector, text string) {
	for _, line := range strings.Split(text, "\n") {
		if !bulletRe.MatchString(line) {
			continue
		}
		content := stripBullet(line)
		name, _, found := strings.Cut(content, ":")
		if !found {
			continue
		}
		name = cleanChartName(name)
		if !validChartName(name, chartBlockWords, chartNameMinLen) {
			continue
		}
		value, ok := bestEGPValue(line)
		if !ok {
			continue
		}
		c.add(name, value, "EGP")
	}
}

func chartTier2(c *chartCollector, text string) {
	for _, m := range chartTier2Re.FindAllStringSubmatch(text, -1) {
		name := cleanChartName(m[1])
		if !validChartName(name, chartBlockWords, chartNameMinLen) {
			continue
		}
		if v, ok := parseAmount(m[2]); ok {
			c.add(name, v, "EGP")
		}
	}
}

func chartTier3(c *chartCollector, text string) {
	for _, m := range chartTier3Re.FindAllStringSubmatch(text, -1) {
		name := cleanChartName(m[1])
		if !validChartName(name, chartBlockWords, chartNameMinLen) {
			continue
		}
		if v, ok := parseAmount(m[2]); ok {
			c.add(name, v, strings.TrimSpace(m[3]))
		}
	}
}

func chartTier4(c *chartCollector, text string) {
	for _, m := range chartTier4Re.FindAllStringSubmatch(text, -1) {
		name := cleanChartName(m[1])
		if !validChartName(name, chartBlockWordsExtended, chartNameMinLenT4) {
			continue
		}
		if v, ok := parseAmount(m[2]); ok {
			c.add(name, v, "EGP")
		}
	}
}

// bestEGPValue picks the largest "<n> EGP" amount on the line that clears
// the percentage guard, falling back to the largest amount found at all.
func bestEGPValue(line string) (float64, bool) {
	var best, bestPlausible float64
	var found, foundPlausible bool
	for _, m := range egpValueRe.FindAllStringSubmatch(line, -1) {
		v, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
		if v >= chartMinPlausibleEGP && (!foundPlausible || v > bestPlausible) {
			bestPlausible, foundPlausible = v, true
		}
	}
	if foundPlausible {
		return bestPlausible, true
	}
	return best, found
}

// cleanChartName strips leading icon glyphs and markup from a candidate.
func cleanChartName(name string) string {
	name = stripMarkup(name)
	name = strings.TrimLeftFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(name)
}

func validChartName(name string, blockWords []string, minLen int) bool {
	n := utf8.RuneCountInString(name)
	if n < minLen || n > chartNameMaxLen {
		return false
	}
	lower := strings.ToLower(name)
	for _, w := range blockWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= chartNameTrunc {
		return name
	}
	return string(runes[:chartNameTrunc]) + "…"
}
