package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChartPercentageGuard(t *testing.T) {
	// The largest amount >= 100 wins; a stray small EGP number nearby must
	// not be picked up.
	text := strings.Join([]string{
		"• Steak & Fries: 4 units → 2,600 EGP GMV (22%)",
		"• Koshari Bowl: 85 EGP avg → 3,400 EGP",
		"• Chicken Shawarma: 2,900 EGP",
	}, "\n")
	r := ParseResponse(text)

	if !assert.Len(t, r.ChartData, 3) {
		return
	}
	assert.Equal(t, "Steak & Fries", r.ChartData[0].Name)
	assert.Equal(t, float64(2600), r.ChartData[0].Value)
	assert.Equal(t, "Koshari Bowl", r.ChartData[1].Name)
	assert.Equal(t, float64(3400), r.ChartData[1].Value, "must pick 3,400 over the 85 EGP average")
}

func TestChartRequiresThreePoints(t *testing.T) {
	text := "• Koshari Bowl: 3,400 EGP\n• Chicken Shawarma: 2,900 EGP"
	r := ParseResponse(text)
	assert.Empty(t, r.ChartData, "fewer than 3 points must not produce a chart")
}

func TestChartCapAtEight(t *testing.T) {
	var lines []string
	names := []string{"Koshari", "Shawarma", "Falafel", "Molokhia", "Fattah", "Hawawshi", "Mahshi", "Feteer", "Basbousa", "Kunafa"}
	for i, name := range names {
		lines = append(lines, "• "+name+" Plate: "+strings.Repeat("1", i+1)+"00 EGP")
	}
	r := ParseResponse(strings.Join(lines, "\n"))
	assert.Len(t, r.ChartData, 8)
	assert.Equal(t, "Koshari Plate", r.ChartData[0].Name, "encounter order is preserved")
}

func TestChartNameTruncation(t *testing.T) {
	text := strings.Join([]string{
		"• Slow Roasted Lamb Shoulder Special: 5,200 EGP",
		"• Koshari Bowl: 3,400 EGP",
		"• Falafel Wrap: 1,100 EGP",
	}, "\n")
	r := ParseResponse(text)

	if !assert.Len(t, r.ChartData, 3) {
		return
	}
	assert.Equal(t, "Slow Roasted Lamb Sh…", r.ChartData[0].Name)
}

func TestChartDedupCaseInsensitive(t *testing.T) {
	text := strings.Join([]string{
		"• Koshari Bowl: 3,400 EGP",
		"• KOSHARI BOWL: 9,999 EGP",
		"• Falafel Wrap: 1,100 EGP",
		"• Feteer Meshaltet: 900 EGP",
	}, "\n")
	r := ParseResponse(text)

	if !assert.Len(t, r.ChartData, 3) {
		return
	}
	assert.Equal(t, float64(3400), r.ChartData[0].Value, "first occurrence wins")
}

func TestChartBlocklistRejectsMetricNames(t *testing.T) {
	text := strings.Join([]string{
		"• Total Revenue: 28,000 EGP",
		"• Koshari Bowl: 3,400 EGP",
		"• Falafel Wrap: 1,100 EGP",
	}, "\n")
	r := ParseResponse(text)
	// Only two legitimate names remain, below the 3-point floor.
	assert.Empty(t, r.ChartData)
}

func TestChartRankedListTier(t *testing.T) {
	text := strings.Join([]string{
		"Top sellers this week",
		"1. Koshari Bowl - 3,400 EGP",
		"2. Chicken Shawarma - 2,900 EGP",
		"3. Falafel Wrap - 1,100 EGP",
	}, "\n")
	r := ParseResponse(text)

	if !assert.Len(t, r.ChartData, 3) {
		return
	}
	assert.Equal(t, "Koshari Bowl", r.ChartData[0].Name)
	assert.Equal(t, float64(3400), r.ChartData[0].Value)
	assert.Equal(t, "EGP", r.ChartData[0].Label)
}

func TestChartLooseTierWithBoldNames(t *testing.T) {
	text := strings.Join([]string{
		"**Koshari Bowl**: 3,400 EGP",
		"**Chicken Shawarma**: 2,900 GMV",
		"**Falafel Wrap**: 1,100 EGP",
	}, "\n")
	r := ParseResponse(text)
	assert.Len(t, r.ChartData, 3)
}
