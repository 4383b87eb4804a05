package dashboard

import (
	"math"
	"slices"

	domain "options-dashboard/internal/domain/dashboard"
)

// Matches 回傳單筆機會是否符合所有啟用中的條件（僅 AND）。
func Matches(o domain.Opportunity, f domain.FilterState) bool {
	if f.StrategyType != "" && o.StrategyType != f.StrategyType {
		return false
	}
	if f.UnderlyingSymbol != "" && o.UnderlyingSymbol != f.UnderlyingSymbol {
		return false
	}
	if f.OptionType != "" && string(o.OptionType) != f.OptionType {
		return false
	}
	if o.Score < f.MinScore {
		return false
	}
	if o.ProbabilityOfProfit < f.MinProbability {
		return false
	}
	if o.DaysToExpiry > f.MaxDaysToExpiry {
		return false
	}
	return true
}

// Filter 回傳符合條件的新切片，保留原始相對順序，不修改輸入。
func Filter(opps []domain.Opportunity, f domain.FilterState) []domain.Opportunity {
	out := make([]domain.Opportunity, 0, len(opps))
	for _, o := range opps {
		if Matches(o, f) {
			out = append(out, o)
		}
	}
	return out
}

// FilterOptions 為篩選面板下拉選單的選項。
type FilterOptions struct {
	Symbols     []string `json:"symbols"`
	Strategies  []string `json:"strategies"`
	OptionTypes []Choice `json:"option_types"`
}

// Choice 為下拉選單的一個選項，Value 為空代表不限制。
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionTypeChoices 為選擇權類型的固定選項。
var OptionTypeChoices = []Choice{
	{Value: "", Label: "Calls & Puts"},
	{Value: string(domain.OptionCall), Label: "Calls Only"},
	{Value: string(domain.OptionPut), Label: "Puts Only"},
}

// BuildFilterOptions 由資料集取得排序後且不重複的標的與策略。
func BuildFilterOptions(opps []domain.Opportunity) FilterOptions {
	symbols := make([]string, 0)
	strategies := make([]string, 0)
	seenSym := make(map[string]struct{})
	seenStr := make(map[string]struct{})
	for _, o := range opps {
		if _, ok := seenSym[o.UnderlyingSymbol]; !ok {
			seenSym[o.UnderlyingSymbol] = struct{}{}
			symbols = append(symbols, o.UnderlyingSymbol)
		}
		if _, ok := seenStr[o.StrategyType]; !ok {
			seenStr[o.StrategyType] = struct{}{}
			strategies = append(strategies, o.StrategyType)
		}
	}
	slices.Sort(symbols)
	slices.Sort(strategies)
	return FilterOptions{
		Symbols:     symbols,
		Strategies:  strategies,
		OptionTypes: OptionTypeChoices,
	}
}

// SliderRange 描述數值篩選的滑桿範圍。
type SliderRange struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// OnStep 回傳 v 是否在範圍內且恰好落在刻度上。
func (r SliderRange) OnStep(v float64) bool {
	if v < float64(r.Min) || v > float64(r.Max) || r.Step <= 0 {
		return false
	}
	steps := (v - float64(r.Min)) / float64(r.Step)
	return steps == math.Trunc(steps)
}

var (
	ScoreSlider       = SliderRange{Min: 0, Max: 100, Step: 5}
	ProbabilitySlider = SliderRange{Min: 0, Max: 100, Step: 5}
	DaysSlider        = SliderRange{Min: 7, Max: domain.DefaultMaxDaysToExpiry, Step: 7}
)
