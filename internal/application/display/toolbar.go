package display

import (
	"fmt"

	domain "options-dashboard/internal/domain/dashboard"
)

// 排序圖示。
const (
	IconUnsorted = "↕"
	IconAsc      = "↑"
	IconDesc     = "↓"
)

// SortButton 為結果列上的排序按鈕；Next 為點擊後的完整頁面狀態。
type SortButton struct {
	Field  domain.SortField
	Label  string
	Active bool
	Icon   string
	Next   domain.PageState
}

// SortLabel 回傳 "Sorted by <欄位> (highest first|lowest first)"。
func SortLabel(s domain.SortState) string {
	order := "lowest first"
	if s.Direction == domain.SortDesc {
		order = "highest first"
	}
	return fmt.Sprintf("Sorted by %s (%s)", s.Field.Label(), order)
}

// ResultsSummary 回傳結果筆數標題。
func ResultsSummary(n int) string {
	return fmt.Sprintf("Showing %s opportunities", FormatCount(int64(n)))
}

// SortButtons 依畫面順序產生四個排序按鈕。
func SortButtons(state domain.PageState) []SortButton {
	out := make([]SortButton, 0, len(domain.ToolbarSortFields))
	for _, f := range domain.ToolbarSortFields {
		b := SortButton{
			Field: f,
			Label: f.ButtonLabel(),
			Icon:  IconUnsorted,
			Next:  state.ToggleSort(f),
		}
		if state.Sort.Field == f {
			b.Active = true
			b.Icon = IconDesc
			if state.Sort.Direction == domain.SortAsc {
				b.Icon = IconAsc
			}
		}
		out = append(out, b)
	}
	return out
}

// ChartsToggleLabel 回傳圖表開關按鈕文字。
func ChartsToggleLabel(showing bool) string {
	if showing {
		return "Hide Charts"
	}
	return "Show Charts"
}
