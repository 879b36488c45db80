package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"app/models"
)

func TestAlertBlockDownTrend(t *testing.T) {
	text := "ALERTS (stock):\n• Fries: 12 qty vs 30 avg ↓60% → check supply\nRegular prose after the block."
	r := ParseResponse(text)

	if !assert.Len(t, r.Insights, 1) {
		return
	}
	in := r.Insights[0]
	assert.Equal(t, "**Fries**: 12 vs 30 avg (↓60%) — check supply", in.Text)
	assert.Equal(t, "⚠️", in.Icon)
	assert.Equal(t, models.InsightWarning, in.Type)
}

func TestAlertBlockUpTrend(t *testing.T) {
	text := "Alerts:\n• Koshari Bowl: 48 qty vs 30 avg ↑60%"
	r := ParseResponse(text)

	if !assert.Len(t, r.Insights, 1) {
		return
	}
	assert.Equal(t, "📈", r.Insights[0].Icon)
	assert.Equal(t, models.InsightInfo, r.Insights[0].Type)
	assert.Equal(t, "**Koshari Bowl**: 48 vs 30 avg (↑60%)", r.Insights[0].Text)
}

func TestAlertMalformedBulletFallsBackToWarning(t *testing.T) {
	text := "ALERTS:\n• Something odd happened with the fryer\n• Fries: 12 qty vs 30 avg ↓60%"
	r := ParseResponse(text)

	if !assert.Len(t, r.Insights, 2) {
		return
	}
	assert.Equal(t, "Something odd happened with the fryer", r.Insights[0].Text)
	assert.Equal(t, models.InsightWarning, r.Insights[0].Type)
	assert.Empty(t, r.Insights[0].Icon)
}

func TestAlertHeaderStrippedFromResidual(t *testing.T) {
	text := "ALERTS:\n• Fries: 12 qty vs 30 avg ↓60%\n\nLong trailing paragraph that easily clears the residual length floor for a text section."
	r := ParseResponse(text)

	last := r.Sections[len(r.Sections)-1]
	assert.Equal(t, models.SectionText, last.Type)
	assert.NotContains(t, last.Content.(string), "ALERTS")
}

func TestNoAlertBlock(t *testing.T) {
	r := ParseResponse("No alert header anywhere in this text.")
	assert.Empty(t, r.Insights)
}
