// Package parser turns free-form assistant replies into a typed, renderable
// data model: headline, KPI cards, a ranked chart, menu-engineering groups,
// recommendations, insights, one markdown table and residual prose.
//
// The pipeline is a fixed-order chain of extraction stages. Each stage sees
// only the text not already claimed by an earlier stage and hands a reduced
// remaining-text value to the next one. Every stage degrades gracefully: a
// pattern that fails to match yields nothing and passes the text through
// unchanged, so ParseResponse never fails regardless of input.
//
// All patterns are stdlib regexp (RE2), so matching stays linear-time even on
// adversarial input.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"app/models"
)

// minResidualTextLen is the floor below which leftover prose is treated as
// noise and dropped instead of becoming a text section.
const minResidualTextLen = 50

// stage is one step of the pipeline. run inspects text, records anything it
// extracted on r, and returns the text still unclaimed plus the section
// content (nil when the stage found nothing).
type stage struct {
	sectionType string
	title       string
	run         func(r *models.ParsedResponse, text string) (remaining string, content interface{})
}

// pipeline is the extraction order. It is deliberately a package-level value
// so the contract is auditable and testable rather than buried in call order.
// Alerts must run before residual insights so alert-shaped lines are not
// re-interpreted.
var pipeline = []stage{
	{sectionType: models.SectionHeadline, run: headlineStage},
	{sectionType: models.SectionKPIs, title: "Key Metrics", run: kpiStage},
	{sectionType: models.SectionInsights, title: "Alerts", run: alertStage},
	{sectionType: models.SectionChart, title: "Top Performers", run: chartStage},
	{sectionType: models.SectionMenu, title: "Menu Engineering", run: menuStage},
	{sectionType: models.SectionRecommendations, title: "Recommendations", run: recommendationStage},
	{sectionType: models.SectionInsights, title: "Insights", run: insightStage},
	{sectionType: models.SectionTable, run: tableStage},
}

// ParseResponse extracts structured content from one assistant reply. It
// never panics and always returns a non-nil result with a non-nil Sections
// slice; for blank input only RawText is set.
func ParseResponse(text string) *models.ParsedResponse {
	r := &models.ParsedResponse{
		Sections: []models.ResponseSection{},
		RawText:  text,
	}
	if strings.TrimSpace(text) == "" {
		return r
	}

	remaining := text
	order := 0
	for _, st := range pipeline {
		rem, content := st.run(r, remaining)
		remaining = rem
		if content == nil {
			continue
		}
		r.Sections = append(r.Sections, models.ResponseSection{
			Type:    st.sectionType,
			Title:   st.title,
			Content: content,
			Order:   order,
		})
		order++
	}

	leftover := cleanResidualText(remaining)
	if utf8.RuneCountInString(leftover) > minResidualTextLen {
		r.Sections = append(r.Sections, models.ResponseSection{
			Type:    models.SectionText,
			Content: leftover,
			Order:   order,
		})
	}
	return r
}

// HasVisualContent reports whether the parsed result has anything worth
// rendering as cards/charts instead of plain prose.
func HasVisualContent(r *models.ParsedResponse) bool {
	if r == nil {
		return false
	}
	return r.Headline != "" ||
		len(r.KPICards) > 0 ||
		len(r.ChartData) > 0 ||
		len(r.MenuEngineering) > 0 ||
		len(r.Recommendations) > 0 ||
		len(r.Insights) > 0 ||
		(r.TableData != nil && len(r.TableData.Headers) > 0)
}

var (
	// bulletRe matches the bullet markers the upstream generator uses. The
	// dash/asterisk forms require trailing whitespace so bold markers at the
	// start of a line are not mistaken for bullets.
	bulletRe = regexp.MustCompile(`^\s*(?:•\s*|[-*]\s+)`)

	// emptySectionHeaderRe matches ALL-CAPS header lines with nothing after
	// the colon, left behind once a block's bullets were consumed.
	emptySectionHeaderRe = regexp.MustCompile(`(?m)^\s*[A-Z][A-Z \t]*:\s*$`)

	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// stripBullet removes a leading bullet marker, if any.
func stripBullet(line string) string {
	return bulletRe.ReplaceAllString(line, "")
}

// stripMarkup removes bold markers and leading heading hashes, then trims.
func stripMarkup(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimLeft(s, "# ")
	return strings.TrimSpace(s)
}

// parseAmount parses a number that may carry thousands separators.
func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cleanResidualText strips empty section headers, collapses excess blank
// lines and trims the result.
func cleanResidualText(text string) string {
	text = emptySectionHeaderRe.ReplaceAllString(text, "")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
