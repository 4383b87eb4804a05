package dashboard

import (
	"encoding/json"
	"fmt"
)

// UnboundedMaxProfit 是上游資料以數值表示「獲利無上限」的保留值。
const UnboundedMaxProfit = 999999

// OptionType 表示買權或賣權。
type OptionType string

const (
	OptionCall OptionType = "call"
	OptionPut  OptionType = "put"
)

// Valid 回傳是否為已知的選擇權類型。
func (t OptionType) Valid() bool {
	return t == OptionCall || t == OptionPut
}

// MaxProfit 為最大獲利，無上限時以 Unbounded 標記而非魔術數字。
type MaxProfit struct {
	Value     float64
	Unbounded bool
}

// BoundedProfit 建立有上限的最大獲利。
func BoundedProfit(v float64) MaxProfit {
	return MaxProfit{Value: v}
}

// UnboundedProfit 建立無上限的最大獲利。
func UnboundedProfit() MaxProfit {
	return MaxProfit{Unbounded: true}
}

// Raw 回傳 JSON 上的原始數值，無上限時為保留值。
func (m MaxProfit) Raw() float64 {
	if m.Unbounded {
		return UnboundedMaxProfit
	}
	return m.Value
}

// PlotValue 回傳繪圖用數值：無上限時以 3 倍最大虧損代替，僅供圖表使用。
func (m MaxProfit) PlotValue(maxLoss float64) float64 {
	if m.Unbounded {
		return maxLoss * 3
	}
	return m.Value
}

func (m MaxProfit) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Raw())
}

func (m *MaxProfit) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("max_profit: %w", err)
	}
	if v == UnboundedMaxProfit {
		*m = UnboundedProfit()
		return nil
	}
	*m = BoundedProfit(v)
	return nil
}

// Opportunity 為一筆已由上游評分的選擇權策略機會，欄位皆為唯讀輸入。
type Opportunity struct {
	ID                  string     `json:"id"`
	UnderlyingSymbol    string     `json:"underlying_symbol"`
	UnderlyingPrice     float64    `json:"underlying_price"`
	StrategyType        string     `json:"strategy_type"`
	OptionType          OptionType `json:"option_type"`
	Strike              float64    `json:"strike"`
	DaysToExpiry        int        `json:"days_to_expiry"`
	ExpiryDate          string     `json:"expiry_date"`
	MarketPrice         float64    `json:"market_price"`
	Bid                 float64    `json:"bid"`
	Ask                 float64    `json:"ask"`
	Volume              int64      `json:"volume"`
	OpenInterest        int64      `json:"open_interest"`
	ImpliedVolatility   float64    `json:"implied_volatility"`
	Delta               float64    `json:"delta"`
	Gamma               float64    `json:"gamma"`
	Theta               float64    `json:"theta"`
	Vega                float64    `json:"vega"`
	Moneyness           float64    `json:"moneyness"`
	BidAskSpreadPct     float64    `json:"bid_ask_spread_pct"`
	Breakeven           float64    `json:"breakeven"`
	MaxLoss             float64    `json:"max_loss"`
	MaxProfit           MaxProfit  `json:"max_profit"`
	ProbabilityOfProfit float64    `json:"probability_of_profit"`
	ExpectedValue       float64    `json:"expected_value"`
	Score               float64    `json:"score"`
	RiskRewardRatio     float64    `json:"risk_reward_ratio"`
	LiquidityScore      float64    `json:"liquidity_score"`
	TimeDecay           float64    `json:"time_decay"`
	IntrinsicValue      float64    `json:"intrinsic_value"`
	TimeValue           float64    `json:"time_value"`
}

// IsCall 回傳是否為買權。
func (o Opportunity) IsCall() bool {
	return o.OptionType == OptionCall
}
