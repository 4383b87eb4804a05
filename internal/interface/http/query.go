package httpapi

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	domain "options-dashboard/internal/domain/dashboard"
)

// 頁面狀態的 query 參數名稱，與 FilterState / SortState 的 JSON 名稱一致。
const (
	paramStrategyType     = "strategy_type"
	paramMinScore         = "min_score"
	paramMinProbability   = "min_probability"
	paramMaxDaysToExpiry  = "max_days_to_expiry"
	paramOptionType       = "option_type"
	paramUnderlyingSymbol = "underlying_symbol"
	paramSort             = "sort"
	paramDir              = "dir"
	paramCharts           = "charts"
	paramField            = "field"
)

// parsePageState 解析 query；缺漏或格式錯誤的值一律回退為預設值，不回報錯誤。
func parsePageState(q url.Values) domain.PageState {
	return domain.PageState{
		Filters:    parseFilterState(q),
		Sort:       parseSortState(q),
		ShowCharts: parseBoolParam(q, paramCharts, true),
	}
}

func parseFilterState(q url.Values) domain.FilterState {
	f := domain.DefaultFilterState()
	f.StrategyType = strings.TrimSpace(q.Get(paramStrategyType))
	f.UnderlyingSymbol = strings.TrimSpace(q.Get(paramUnderlyingSymbol))
	if ot := domain.OptionType(strings.ToLower(strings.TrimSpace(q.Get(paramOptionType)))); ot.Valid() {
		f.OptionType = string(ot)
	}
	f.MinScore = parseFloatParam(q, paramMinScore, f.MinScore)
	f.MinProbability = parseFloatParam(q, paramMinProbability, f.MinProbability)
	f.MaxDaysToExpiry = parseIntParam(q, paramMaxDaysToExpiry, f.MaxDaysToExpiry)
	return f
}

func parseSortState(q url.Values) domain.SortState {
	s := domain.DefaultSortState()
	if field := strings.TrimSpace(q.Get(paramSort)); field != "" {
		s.Field = domain.SortField(field)
	}
	if q.Has(paramDir) {
		s.Direction = domain.ParseSortDirection(q.Get(paramDir))
	}
	return s
}

func parseFloatParam(q url.Values, key string, def float64) float64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

func parseIntParam(q url.Values, key string, def int) int {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func parseBoolParam(q url.Values, key string, def bool) bool {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "show", "on", "yes":
		return true
	case "hide", "off", "no":
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// encodePageState 只輸出與預設值不同的欄位，讓連結保持簡短。
func encodePageState(p domain.PageState) url.Values {
	q := url.Values{}
	f := p.Filters
	def := domain.DefaultFilterState()
	if f.StrategyType != def.StrategyType {
		q.Set(paramStrategyType, f.StrategyType)
	}
	if f.UnderlyingSymbol != def.UnderlyingSymbol {
		q.Set(paramUnderlyingSymbol, f.UnderlyingSymbol)
	}
	if f.OptionType != def.OptionType {
		q.Set(paramOptionType, f.OptionType)
	}
	if f.MinScore != def.MinScore {
		q.Set(paramMinScore, strconv.FormatFloat(f.MinScore, 'f', -1, 64))
	}
	if f.MinProbability != def.MinProbability {
		q.Set(paramMinProbability, strconv.FormatFloat(f.MinProbability, 'f', -1, 64))
	}
	if f.MaxDaysToExpiry != def.MaxDaysToExpiry {
		q.Set(paramMaxDaysToExpiry, strconv.Itoa(f.MaxDaysToExpiry))
	}

	defSort := domain.DefaultSortState()
	if p.Sort.Field != defSort.Field {
		q.Set(paramSort, string(p.Sort.Field))
	}
	if p.Sort.Direction != defSort.Direction {
		q.Set(paramDir, string(p.Sort.Direction))
	}
	if !p.ShowCharts {
		q.Set(paramCharts, "0")
	}
	return q
}

// stateURL 回傳代表完整頁面狀態的連結。
func stateURL(p domain.PageState) string {
	q := encodePageState(p)
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
