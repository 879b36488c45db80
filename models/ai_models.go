package models

// AssistantChatRequest defines the structure for requests to the AI assistant.
type AssistantChatRequest struct {
	Prompt string `json:"prompt"`
}

// Trend directions for a KPI card.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// Insight types, used by the frontend as soft rendering hints.
const (
	InsightInfo      = "info"
	InsightWarning   = "warning"
	InsightSuccess   = "success"
	InsightHighlight = "highlight"
)

// Section types. Consumers iterate Sections in order rather than re-deriving
// render order from field presence.
const (
	SectionHeadline        = "headline"
	SectionKPIs            = "kpis"
	SectionChart           = "chart"
	SectionInsights        = "insights"
	SectionMenu            = "menu"
	SectionRecommendations = "recommendations"
	SectionTable           = "table"
	SectionText            = "text"
)

// KPITrend describes the movement of a metric vs. a prior period.
type KPITrend struct {
	Direction string  `json:"direction"`
	Value     float64 `json:"value"`
	Label     string  `json:"label,omitempty"`
}

// KPICard is a single named business metric. Value is a float64 when the
// source amount parsed cleanly, otherwise the raw string is kept.
type KPICard struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
	Unit  string      `json:"unit,omitempty"`
	Trend *KPITrend   `json:"trend,omitempty"`
}

// InsightItem is a free-text observation with optional icon and type hint.
type InsightItem struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
	Type string `json:"type,omitempty"`
}

// MenuEngClass groups menu items into one of the four menu-engineering
// quadrants (STAR, PLOWHORSE, PUZZLE, DOG).
type MenuEngClass struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// RecommendationItem keeps the numbering from the source text.
type RecommendationItem struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Impact string `json:"impact,omitempty"`
}

// ChartDataPoint is a named magnitude suitable for a ranked bar chart.
type ChartDataPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// TableData holds one markdown pipe-table, verbatim.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ResponseSection records what was extracted and in what order.
type ResponseSection struct {
	Type    string      `json:"type"`
	Title   string      `json:"title,omitempty"`
	Content interface{} `json:"content"`
	Order   int         `json:"order"`
}

// ParsedResponse is the structured form of one assistant reply. All fields
// are optional; Sections is always non-nil.
type ParsedResponse struct {
	Headline        string               `json:"headline,omitempty"`
	KPICards        []KPICard            `json:"kpiCards,omitempty"`
	Insights        []InsightItem        `json:"insights,omitempty"`
	MenuEngineering []MenuEngClass       `json:"menuEngineering,omitempty"`
	Recommendations []RecommendationItem `json:"recommendations,omitempty"`
	ChartData       []ChartDataPoint     `json:"chartData,omitempty"`
	TableData       *TableData           `json:"tableData,omitempty"`
	Sections        []ResponseSection    `json:"sections"`
	RawText         string               `json:"rawText,omitempty"`
}
