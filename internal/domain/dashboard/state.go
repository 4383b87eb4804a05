package dashboard

import (
	"fmt"
	"strings"
)

// DefaultMaxDaysToExpiry 為到期日篩選的預設上限（即不限制）。
const DefaultMaxDaysToExpiry = 365

// FilterState 為列表篩選條件，每次變更都整筆替換。
type FilterState struct {
	StrategyType     string  `json:"strategy_type"`
	MinScore         float64 `json:"min_score"`
	MinProbability   float64 `json:"min_probability"`
	MaxDaysToExpiry  int     `json:"max_days_to_expiry"`
	OptionType       string  `json:"option_type"`
	UnderlyingSymbol string  `json:"underlying_symbol"`
}

// DefaultFilterState 回傳不設任何限制的預設條件。
func DefaultFilterState() FilterState {
	return FilterState{
		StrategyType:     "",
		MinScore:         0,
		MinProbability:   0,
		MaxDaysToExpiry:  DefaultMaxDaysToExpiry,
		OptionType:       "",
		UnderlyingSymbol: "",
	}
}

// Reset 不論目前條件為何，一律回傳預設條件。
func (FilterState) Reset() FilterState {
	return DefaultFilterState()
}

// ActiveCount 回傳與預設值不同的條件數。
func (f FilterState) ActiveCount() int {
	n := 0
	if f.StrategyType != "" {
		n++
	}
	if f.UnderlyingSymbol != "" {
		n++
	}
	if f.OptionType != "" {
		n++
	}
	if f.MinScore != 0 {
		n++
	}
	if f.MinProbability != 0 {
		n++
	}
	if f.MaxDaysToExpiry != DefaultMaxDaysToExpiry {
		n++
	}
	return n
}

// SortDirection 為排序方向。
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Flip 回傳相反方向。
func (d SortDirection) Flip() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ParseSortDirection 解析排序方向，未知值視為 desc。
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// SortState 指定排序欄位與方向。
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortState 預設依分數由高到低。
func DefaultSortState() SortState {
	return SortState{Field: FieldScore, Direction: SortDesc}
}

// Toggle 點擊同一欄位時切換方向；換欄位時重設為 desc。
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		return SortState{Field: field, Direction: s.Direction.Flip()}
	}
	return SortState{Field: field, Direction: SortDesc}
}

// Key 回傳可作為快取鍵的正規化字串。
func (s SortState) Key() string {
	return fmt.Sprintf("%s:%s", s.Field, s.Direction)
}

// Key 回傳可作為快取鍵的正規化字串。
func (f FilterState) Key() string {
	return fmt.Sprintf("st=%s|sym=%s|ot=%s|ms=%g|mp=%g|dte=%d",
		f.StrategyType, f.UnderlyingSymbol, f.OptionType, f.MinScore, f.MinProbability, f.MaxDaysToExpiry)
}

// PageState 為儀表板根層持有的全部 UI 狀態。
type PageState struct {
	Filters    FilterState
	Sort       SortState
	ShowCharts bool
}

// DefaultPageState 預設顯示圖表。
func DefaultPageState() PageState {
	return PageState{
		Filters:    DefaultFilterState(),
		Sort:       DefaultSortState(),
		ShowCharts: true,
	}
}

// WithFilters 以新條件整筆替換。
func (p PageState) WithFilters(f FilterState) PageState {
	p.Filters = f
	return p
}

// ResetFilters 只重設篩選條件，保留排序與圖表開關。
func (p PageState) ResetFilters() PageState {
	p.Filters = p.Filters.Reset()
	return p
}

// ToggleSort 套用排序按鈕的點擊。
func (p PageState) ToggleSort(field SortField) PageState {
	p.Sort = p.Sort.Toggle(field)
	return p
}

// ToggleCharts 切換圖表顯示。
func (p PageState) ToggleCharts() PageState {
	p.ShowCharts = !p.ShowCharts
	return p
}
