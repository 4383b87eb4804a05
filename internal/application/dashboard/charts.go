package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	domain "options-dashboard/internal/domain/dashboard"
)

const (
	// TopUnderlyingsLimit 為標的長條圖顯示的最大筆數。
	TopUnderlyingsLimit = 8

	// RiskRewardSampleSize 為風險報酬散佈圖取樣筆數（依原始順序取前 N 筆）。
	RiskRewardSampleSize = 20

	// minLabelShare 低於此比例的圓餅切片不顯示百分比。
	minLabelShare  = 0.05
	strategyPrefix = "Long "
)

// Palette 為圖表配色，依序循環使用。
var Palette = []string{"#0ea5e9", "#22c55e", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4", "#84cc16"}

// StrategySlice 為策略分佈圓餅圖的一塊。
type StrategySlice struct {
	Name      string  `json:"name"`
	FullName  string  `json:"full_name"`
	Value     int     `json:"value"`
	Percent   float64 `json:"percent"`
	ShowLabel bool    `json:"show_label"`
	Color     string  `json:"color"`
}

// ScoreBand 為分數直方圖的一個區間，上下界皆包含。
type ScoreBand struct {
	Range string  `json:"range"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// UnderlyingCount 為單一標的出現次數。
type UnderlyingCount struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// RiskRewardPoint 為散佈圖上的一點。
type RiskRewardPoint struct {
	Name        string  `json:"name"`
	Risk        float64 `json:"risk"`
	Reward      float64 `json:"reward"`
	Score       float64 `json:"score"`
	Probability float64 `json:"probability"`
}

// Charts 彙整四張圖所需資料。
type Charts struct {
	StrategyDistribution []StrategySlice   `json:"strategy_distribution"`
	ScoreDistribution    []ScoreBand       `json:"score_distribution"`
	TopUnderlyings       []UnderlyingCount `json:"top_underlyings"`
	RiskReward           []RiskRewardPoint `json:"risk_reward"`
}

// scoreBands 固定五個區間；小數分數若落在 20 與 21 之間等縫隙中不計入任何區間。
var scoreBands = []ScoreBand{
	{Range: "0-20", Min: 0, Max: 20},
	{Range: "21-40", Min: 21, Max: 40},
	{Range: "41-60", Min: 41, Max: 60},
	{Range: "61-80", Min: 61, Max: 80},
	{Range: "81-100", Min: 81, Max: 100},
}

// StrategyLabel 去掉策略名稱中第一個 "Long " 作為顯示名稱。
func StrategyLabel(name string) string {
	return strings.Replace(name, strategyPrefix, "", 1)
}

// StrategyDistribution 直接轉換市場摘要中的策略計數；依數量由多到少、同數量依名稱排序。
func StrategyDistribution(overview domain.MarketOverview) []StrategySlice {
	names := make([]string, 0, len(overview.StrategyDistribution))
	total := 0
	for name, v := range overview.StrategyDistribution {
		names = append(names, name)
		total += v
	}
	sort.Slice(names, func(i, j int) bool {
		vi, vj := overview.StrategyDistribution[names[i]], overview.StrategyDistribution[names[j]]
		if vi != vj {
			return vi > vj
		}
		return names[i] < names[j]
	})

	out := make([]StrategySlice, 0, len(names))
	for i, name := range names {
		v := overview.StrategyDistribution[name]
		var share float64
		if total > 0 {
			share = float64(v) / float64(total)
		}
		out = append(out, StrategySlice{
			Name:      StrategyLabel(name),
			FullName:  name,
			Value:     v,
			Percent:   share * 100,
			ShowLabel: share >= minLabelShare,
			Color:     Palette[i%len(Palette)],
		})
	}
	return out
}

// ScoreHistogram 計算各分數區間的筆數。
func ScoreHistogram(opps []domain.Opportunity) []ScoreBand {
	out := make([]ScoreBand, len(scoreBands))
	copy(out, scoreBands)
	for _, o := range opps {
		for i := range out {
			if o.Score >= out[i].Min && o.Score <= out[i].Max {
				out[i].Count++
			}
		}
	}
	return out
}

// TopUnderlyings 依出現次數由多到少排序，同數量依首次出現順序，最多取 limit 筆。
func TopUnderlyings(opps []domain.Opportunity, limit int) []UnderlyingCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, o := range opps {
		if _, ok := counts[o.UnderlyingSymbol]; !ok {
			order = append(order, o.UnderlyingSymbol)
		}
		counts[o.UnderlyingSymbol]++
	}

	out := make([]UnderlyingCount, 0, len(order))
	for _, sym := range order {
		out = append(out, UnderlyingCount{Symbol: sym, Count: counts[sym]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RiskRewardSample 取前 n 筆（不排序）轉為散佈圖資料點。
func RiskRewardSample(opps []domain.Opportunity, n int) []RiskRewardPoint {
	if n > len(opps) {
		n = len(opps)
	}
	if n < 0 {
		n = 0
	}
	out := make([]RiskRewardPoint, 0, n)
	for _, o := range opps[:n] {
		out = append(out, RiskRewardPoint{
			Name:        fmt.Sprintf("%s %s", o.UnderlyingSymbol, formatStrike(o.Strike)),
			Risk:        o.MaxLoss,
			Reward:      o.MaxProfit.PlotValue(o.MaxLoss),
			Score:       o.Score,
			Probability: o.ProbabilityOfProfit,
		})
	}
	return out
}

// BuildCharts 以完整未篩選資料集計算四張圖。
func BuildCharts(data domain.DashboardData) Charts {
	return Charts{
		StrategyDistribution: StrategyDistribution(data.MarketOverview),
		ScoreDistribution:    ScoreHistogram(data.Opportunities),
		TopUnderlyings:       TopUnderlyings(data.Opportunities, TopUnderlyingsLimit),
		RiskReward:           RiskRewardSample(data.Opportunities, RiskRewardSampleSize),
	}
}

// formatStrike 以最短的十進位表示輸出履約價（42 而非 42.000000，也不用 1e+06）。
func formatStrike(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
