package dashboard

import "strings"

// SortField 為 Opportunity 的欄位名稱（與 JSON 欄位一致）。
type SortField string

const (
	FieldID                  SortField = "id"
	FieldUnderlyingSymbol    SortField = "underlying_symbol"
	FieldUnderlyingPrice     SortField = "underlying_price"
	FieldStrategyType        SortField = "strategy_type"
	FieldOptionType          SortField = "option_type"
	FieldStrike              SortField = "strike"
	FieldDaysToExpiry        SortField = "days_to_expiry"
	FieldExpiryDate          SortField = "expiry_date"
	FieldMarketPrice         SortField = "market_price"
	FieldBid                 SortField = "bid"
	FieldAsk                 SortField = "ask"
	FieldVolume              SortField = "volume"
	FieldOpenInterest        SortField = "open_interest"
	FieldImpliedVolatility   SortField = "implied_volatility"
	FieldDelta               SortField = "delta"
	FieldGamma               SortField = "gamma"
	FieldTheta               SortField = "theta"
	FieldVega                SortField = "vega"
	FieldMoneyness           SortField = "moneyness"
	FieldBidAskSpreadPct     SortField = "bid_ask_spread_pct"
	FieldBreakeven           SortField = "breakeven"
	FieldMaxLoss             SortField = "max_loss"
	FieldMaxProfit           SortField = "max_profit"
	FieldProbabilityOfProfit SortField = "probability_of_profit"
	FieldExpectedValue       SortField = "expected_value"
	FieldScore               SortField = "score"
	FieldRiskRewardRatio     SortField = "risk_reward_ratio"
	FieldLiquidityScore      SortField = "liquidity_score"
	FieldTimeDecay           SortField = "time_decay"
	FieldIntrinsicValue      SortField = "intrinsic_value"
	FieldTimeValue           SortField = "time_value"
)

// ToolbarSortFields 為結果列上四個排序按鈕，依畫面順序。
var ToolbarSortFields = []SortField{
	FieldScore,
	FieldProbabilityOfProfit,
	FieldExpectedValue,
	FieldDaysToExpiry,
}

var fieldLabels = map[SortField]string{
	FieldProbabilityOfProfit: "Win Rate",
	FieldExpectedValue:       "Expected Value",
	FieldDaysToExpiry:        "DTE",
	FieldScore:               "Score",
}

// ButtonLabel 回傳排序按鈕上的文字。
func (f SortField) ButtonLabel() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return f.Label()
}

// Label 回傳欄位的人類可讀名稱（底線換成空白）。
func (f SortField) Label() string {
	return strings.ReplaceAll(string(f), "_", " ")
}
