package display

import (
	"fmt"
	"strconv"

	domain "options-dashboard/internal/domain/dashboard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Infinity 為無上限獲利的顯示字樣。
	Infinity = "∞"

	thousandThreshold = 10000

	timestampLayout = "Jan 2, 2006, 03:04 PM"
	expiryLayout    = "1/2/2006"
)

var thousand = decimal.NewFromInt(1000)

// FormatCurrency 大於等於一萬時以 K 為單位保留一位小數，其餘取整數。
func FormatCurrency(v float64) string {
	d := decimal.NewFromFloat(v)
	if v >= thousandThreshold {
		return "$" + d.Div(thousand).StringFixed(1) + "K"
	}
	return "$" + d.StringFixed(0)
}

// FormatMaxProfit 無上限時回傳 ∞，不可輸出哨兵數值。
func FormatMaxProfit(mp domain.MaxProfit) string {
	if mp.Unbounded {
		return Infinity
	}
	return FormatCurrency(mp.Value)
}

// FormatPercent 輸出一位小數百分比。
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatRatio 輸出風險報酬比，例如 2.50:1。
func FormatRatio(v float64) string {
	return fmt.Sprintf("%.2f:1", v)
}

// FormatTheta 輸出每日時間價值耗損。
func FormatTheta(v float64) string {
	return fmt.Sprintf("$%.2f/day", v)
}

// FormatDollars 輸出兩位小數金額。
func FormatDollars(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatPlain 以最短的十進位表示輸出數字（履約價、標的價格），不使用指數形式。
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCount 以千分位輸出整數。
func FormatCount(n int64) string {
	// message.Printer 不保證併發安全，每次各自建立
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%d", n)
}

// FormatTimestamp 將 generated_at 轉為 "Jan 2, 2006, 03:04 PM"；無法解析時原樣回傳。
func FormatTimestamp(s string) string {
	t, ok := domain.ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format(timestampLayout)
}

// FormatExpiry 將到期日轉為 M/D/YYYY；無法解析時原樣回傳。
func FormatExpiry(s string) string {
	t, ok := domain.ParseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format(expiryLayout)
}
