package dashboard

import (
	"cmp"
	"slices"

	domain "options-dashboard/internal/domain/dashboard"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator 比較兩筆機會，回傳負值/零/正值。
type Comparator func(a, b domain.Opportunity) int

// fieldAccessor 每個欄位只會有 number 或 text 其中之一。
type fieldAccessor struct {
	number func(domain.Opportunity) float64
	text   func(domain.Opportunity) string
}

func num(f func(domain.Opportunity) float64) fieldAccessor { return fieldAccessor{number: f} }
func text(f func(domain.Opportunity) string) fieldAccessor { return fieldAccessor{text: f} }
func count(f func(domain.Opportunity) int64) fieldAccessor { return num(func(o domain.Opportunity) float64 { return float64(f(o)) }) }

var accessors = map[domain.SortField]fieldAccessor{
	domain.FieldID:                  text(func(o domain.Opportunity) string { return o.ID }),
	domain.FieldUnderlyingSymbol:    text(func(o domain.Opportunity) string { return o.UnderlyingSymbol }),
	domain.FieldUnderlyingPrice:     num(func(o domain.Opportunity) float64 { return o.UnderlyingPrice }),
	domain.FieldStrategyType:        text(func(o domain.Opportunity) string { return o.StrategyType }),
	domain.FieldOptionType:          text(func(o domain.Opportunity) string { return string(o.OptionType) }),
	domain.FieldStrike:              num(func(o domain.Opportunity) float64 { return o.Strike }),
	domain.FieldDaysToExpiry:        count(func(o domain.Opportunity) int64 { return int64(o.DaysToExpiry) }),
	domain.FieldExpiryDate:          text(func(o domain.Opportunity) string { return o.ExpiryDate }),
	domain.FieldMarketPrice:         num(func(o domain.Opportunity) float64 { return o.MarketPrice }),
	domain.FieldBid:                 num(func(o domain.Opportunity) float64 { return o.Bid }),
	domain.FieldAsk:                 num(func(o domain.Opportunity) float64 { return o.Ask }),
	domain.FieldVolume:              count(func(o domain.Opportunity) int64 { return o.Volume }),
	domain.FieldOpenInterest:        count(func(o domain.Opportunity) int64 { return o.OpenInterest }),
	domain.FieldImpliedVolatility:   num(func(o domain.Opportunity) float64 { return o.ImpliedVolatility }),
	domain.FieldDelta:               num(func(o domain.Opportunity) float64 { return o.Delta }),
	domain.FieldGamma:               num(func(o domain.Opportunity) float64 { return o.Gamma }),
	domain.FieldTheta:               num(func(o domain.Opportunity) float64 { return o.Theta }),
	domain.FieldVega:                num(func(o domain.Opportunity) float64 { return o.Vega }),
	domain.FieldMoneyness:           num(func(o domain.Opportunity) float64 { return o.Moneyness }),
	domain.FieldBidAskSpreadPct:     num(func(o domain.Opportunity) float64 { return o.BidAskSpreadPct }),
	domain.FieldBreakeven:           num(func(o domain.Opportunity) float64 { return o.Breakeven }),
	domain.FieldMaxLoss:             num(func(o domain.Opportunity) float64 { return o.MaxLoss }),
	domain.FieldMaxProfit:           num(func(o domain.Opportunity) float64 { return o.MaxProfit.Raw() }),
	domain.FieldProbabilityOfProfit: num(func(o domain.Opportunity) float64 { return o.ProbabilityOfProfit }),
	domain.FieldExpectedValue:       num(func(o domain.Opportunity) float64 { return o.ExpectedValue }),
	domain.FieldScore:               num(func(o domain.Opportunity) float64 { return o.Score }),
	domain.FieldRiskRewardRatio:     num(func(o domain.Opportunity) float64 { return o.RiskRewardRatio }),
	domain.FieldLiquidityScore:      num(func(o domain.Opportunity) float64 { return o.LiquidityScore }),
	domain.FieldTimeDecay:           num(func(o domain.Opportunity) float64 { return o.TimeDecay }),
	domain.FieldIntrinsicValue:      num(func(o domain.Opportunity) float64 { return o.IntrinsicValue }),
	domain.FieldTimeValue:           num(func(o domain.Opportunity) float64 { return o.TimeValue }),
}

// KnownField 回傳欄位是否存在於比較表中。
func KnownField(f domain.SortField) bool {
	_, ok := accessors[f]
	return ok
}

// ResolveComparator 依排序狀態查表一次取得比較函式。
// 未知欄位一律視為相等（不報錯，排序不改變順序）。
func ResolveComparator(s domain.SortState) Comparator {
	acc, ok := accessors[s.Field]
	if !ok {
		return func(domain.Opportunity, domain.Opportunity) int { return 0 }
	}
	desc := s.Direction == domain.SortDesc

	if acc.number != nil {
		get := acc.number
		return func(a, b domain.Opportunity) int {
			if desc {
				return cmp.Compare(get(b), get(a))
			}
			return cmp.Compare(get(a), get(b))
		}
	}

	// collate.Collator 非併發安全，每次解析各自建立。
	col := collate.New(language.English)
	get := acc.text
	return func(a, b domain.Opportunity) int {
		if desc {
			return col.CompareString(get(b), get(a))
		}
		return col.CompareString(get(a), get(b))
	}
}

// Sort 回傳排序後的新切片，不修改輸入。
func Sort(opps []domain.Opportunity, s domain.SortState) []domain.Opportunity {
	out := slices.Clone(opps)
	if out == nil {
		out = []domain.Opportunity{}
	}
	slices.SortStableFunc(out, ResolveComparator(s))
	return out
}
