package display

import (
	"fmt"

	domain "options-dashboard/internal/domain/dashboard"
)

const (
	DashboardTitle    = "Options Trading Dashboard"
	DashboardSubtitle = "AI-powered opportunities ranked by risk-adjusted returns"
	DatasetScope      = "Canadian ETF Options Analysis"
	DataProvenance    = "Data generated by Advanced Options Trading Algorithm using Black-Scholes mathematics"
)

// MetricCard 為頁首的一張摘要卡。
type MetricCard struct {
	Title   string
	Value   string
	Caption string
	Tone    Tone
}

// TopHighlight 為頁首的最高分機會摘要。
type TopHighlight struct {
	Symbol       string
	Strategy     string
	Strike       string
	DaysToExpiry int
	Score        string
}

// Header 為頁首顯示模型。
type Header struct {
	Title       string
	Subtitle    string
	Scope       string
	LastUpdated string
	Metrics     []MetricCard
	Top         *TopHighlight
}

// NewHeader 由市場摘要建立頁首；沒有最高分機會時不顯示醒目區塊。
func NewHeader(overview domain.MarketOverview, generatedAt string) Header {
	h := Header{
		Title:       DashboardTitle,
		Subtitle:    DashboardSubtitle,
		Scope:       DatasetScope,
		LastUpdated: FormatTimestamp(generatedAt),
		Metrics: []MetricCard{
			{
				Title:   "Total Opportunities",
				Value:   FormatCount(int64(overview.TotalOpportunities)),
				Caption: fmt.Sprintf("Across %d underlyings", overview.TotalUnderlyings),
				Tone:    ToneBlue,
			},
			{
				Title:   "Avg Score",
				Value:   fmt.Sprintf("%.1f", overview.AvgScore),
				Caption: "Algorithm rating 0-100",
				Tone:    ToneGreen,
			},
			{
				Title:   "Avg Win Rate",
				Value:   FormatPercent(overview.AvgProbabilityOfProfit),
				Caption: "Probability of profit",
				Tone:    ToneYellow,
			},
			{
				Title:   "Positive EV",
				Value:   FormatCount(int64(overview.PositiveEVCount)),
				Caption: "Expected value > $0",
				Tone:    TonePurple,
			},
		},
	}
	if top := overview.TopScoringOpportunity; top != nil {
		h.Top = &TopHighlight{
			Symbol:       top.UnderlyingSymbol,
			Strategy:     top.StrategyType,
			Strike:       "$" + FormatPlain(top.Strike),
			DaysToExpiry: top.DaysToExpiry,
			Score:        fmt.Sprintf("%.1f", top.Score),
		}
	}
	return h
}
