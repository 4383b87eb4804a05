package dashboard

import (
	"fmt"
	"time"
)

// Underlying 為單一標的的彙總統計。
type Underlying struct {
	Symbol              string  `json:"symbol"`
	CurrentPrice        float64 `json:"current_price"`
	TotalOptions        int     `json:"total_options"`
	TotalVolume         int64   `json:"total_volume"`
	TotalOpenInterest   int64   `json:"total_open_interest"`
	AvgIV               float64 `json:"avg_iv"`
	OptionsExpiringSoon int     `json:"options_expiring_soon"`
	CallPutRatio        float64 `json:"call_put_ratio"`
}

// MarketOverview 聚合整份資料集的摘要。
type MarketOverview struct {
	TotalOpportunities     int            `json:"total_opportunities"`
	AvgScore               float64        `json:"avg_score"`
	AvgProbabilityOfProfit float64        `json:"avg_probability_of_profit"`
	AvgExpectedValue       float64        `json:"avg_expected_value"`
	TotalUnderlyings       int            `json:"total_underlyings"`
	StrategyDistribution   map[string]int `json:"strategy_distribution"`
	TopScoringOpportunity  *Opportunity   `json:"top_scoring_opportunity"`
	HighProbabilityCount   int            `json:"high_probability_count"`
	PositiveEVCount        int            `json:"positive_ev_count"`
}

// DashboardData 為載入一次後即不可變的資料包。
type DashboardData struct {
	Opportunities  []Opportunity  `json:"opportunities"`
	MarketOverview MarketOverview `json:"market_overview"`
	Underlyings    []Underlying   `json:"underlyings"`
	GeneratedAt    string         `json:"generated_at"`
}

// GeneratedTime 解析 generated_at，無法解析時回傳 false。
func (d DashboardData) GeneratedTime() (time.Time, bool) {
	return ParseTimestamp(d.GeneratedAt)
}

// ParseTimestamp 接受上游常見的 ISO-8601 格式（含或不含時區）。
func ParseTimestamp(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate 檢查資料品質，回傳警告清單；警告不影響載入。
func (d DashboardData) Validate() []string {
	var warnings []string
	seen := make(map[string]struct{}, len(d.Opportunities))
	for i, o := range d.Opportunities {
		if !o.OptionType.Valid() {
			warnings = append(warnings, fmt.Sprintf("opportunity[%d] id=%s: unknown option_type %q", i, o.ID, o.OptionType))
		}
		if o.Score < 0 || o.Score > 100 {
			warnings = append(warnings, fmt.Sprintf("opportunity[%d] id=%s: score %.2f outside [0,100]", i, o.ID, o.Score))
		}
		if _, dup := seen[o.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("opportunity[%d]: duplicate id %s", i, o.ID))
		}
		seen[o.ID] = struct{}{}
	}
	if _, ok := d.GeneratedTime(); !ok && d.GeneratedAt != "" {
		warnings = append(warnings, fmt.Sprintf("generated_at %q is not a recognised timestamp", d.GeneratedAt))
	}
	return warnings
}
