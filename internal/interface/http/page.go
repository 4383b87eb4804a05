package httpapi

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"options-dashboard/internal/application/dashboard"
	"options-dashboard/internal/application/display"
	domain "options-dashboard/internal/domain/dashboard"
)

// 散佈圖的繪圖區大小（SVG 座標）。
const (
	plotWidth   = 480
	plotHeight  = 260
	plotPadding = 32
)

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

type rangeInput struct {
	Name  string
	Label string
	Value string
	Min   int
	Max   int
	Step  int
}

type filterPanel struct {
	Symbols     []selectOption
	Strategies  []selectOption
	OptionTypes []selectOption
	Ranges      []rangeInput
	ActiveCount int
}

type barModel struct {
	Label   string
	Count   int
	Percent float64
}

type scatterModel struct {
	Width  int
	Height int
	Points []scatterPoint
	MaxX   string
	MaxY   string
}

type scatterPoint struct {
	X     float64
	Y     float64
	Title string
}

type chartsModel struct {
	Strategies  []dashboard.StrategySlice
	PieGradient template.CSS
	Scores      []barModel
	Underlyings []barModel
	RiskReward  scatterModel
}

type pageModel struct {
	Header       display.Header
	State        domain.PageState
	ChartsLabel  string
	ChartsToggle domain.PageState
	Charts       *chartsModel
	Filters      filterPanel
	Summary      string
	SortLabel    string
	SortButtons  []display.SortButton
	Cards        []display.Card
	Empty        bool
	Reset        domain.PageState
	Provenance   string
	LastUpdated  string
}

func newPageModel(v dashboard.PageView) pageModel {
	header := display.NewHeader(v.Overview, v.GeneratedAt)
	m := pageModel{
		Header:       header,
		State:        v.State,
		ChartsLabel:  display.ChartsToggleLabel(v.State.ShowCharts),
		ChartsToggle: v.State.ToggleCharts(),
		Filters:      newFilterPanel(v.State.Filters, v.Options),
		Summary:      display.ResultsSummary(len(v.Opportunities)),
		SortLabel:    display.SortLabel(v.State.Sort),
		SortButtons:  display.SortButtons(v.State),
		Cards:        display.NewCards(v.Opportunities),
		Empty:        v.Empty(),
		Reset:        v.State.ResetFilters(),
		Provenance:   display.DataProvenance,
		LastUpdated:  header.LastUpdated,
	}
	if v.Charts != nil {
		c := newChartsModel(*v.Charts)
		m.Charts = &c
	}
	return m
}

func newFilterPanel(f domain.FilterState, opts dashboard.FilterOptions) filterPanel {
	p := filterPanel{ActiveCount: f.ActiveCount()}

	p.Symbols = append(p.Symbols, selectOption{Value: "", Label: "All Symbols", Selected: f.UnderlyingSymbol == ""})
	for _, s := range opts.Symbols {
		p.Symbols = append(p.Symbols, selectOption{Value: s, Label: s, Selected: s == f.UnderlyingSymbol})
	}
	p.Strategies = append(p.Strategies, selectOption{Value: "", Label: "All Strategies", Selected: f.StrategyType == ""})
	for _, s := range opts.Strategies {
		p.Strategies = append(p.Strategies, selectOption{Value: s, Label: s, Selected: s == f.StrategyType})
	}
	for _, c := range opts.OptionTypes {
		p.OptionTypes = append(p.OptionTypes, selectOption{Value: c.Value, Label: c.Label, Selected: c.Value == f.OptionType})
	}

	score := strconv.FormatFloat(f.MinScore, 'f', -1, 64)
	prob := strconv.FormatFloat(f.MinProbability, 'f', -1, 64)
	days := strconv.Itoa(f.MaxDaysToExpiry)
	p.Ranges = []rangeInput{
		{Name: paramMinScore, Label: fmt.Sprintf("Min Score (%s)", score), Value: score,
			Min: dashboard.ScoreSlider.Min, Max: dashboard.ScoreSlider.Max, Step: dashboard.ScoreSlider.Step},
		{Name: paramMinProbability, Label: fmt.Sprintf("Min Win Rate (%s%%)", prob), Value: prob,
			Min: dashboard.ProbabilitySlider.Min, Max: dashboard.ProbabilitySlider.Max, Step: dashboard.ProbabilitySlider.Step},
		{Name: paramMaxDaysToExpiry, Label: fmt.Sprintf("Max DTE (%s)", days), Value: days,
			Min: dashboard.DaysSlider.Min, Max: dashboard.DaysSlider.Max, Step: dashboard.DaysSlider.Step},
	}
	return p
}

func newChartsModel(c dashboard.Charts) chartsModel {
	m := chartsModel{
		Strategies:  c.StrategyDistribution,
		PieGradient: pieGradient(c.StrategyDistribution),
		RiskReward:  newScatter(c.RiskReward),
	}

	maxScore := 0
	for _, b := range c.ScoreDistribution {
		maxScore = max(maxScore, b.Count)
	}
	for _, b := range c.ScoreDistribution {
		m.Scores = append(m.Scores, barModel{Label: b.Range, Count: b.Count, Percent: share(b.Count, maxScore)})
	}

	maxSym := 0
	for _, u := range c.TopUnderlyings {
		maxSym = max(maxSym, u.Count)
	}
	for _, u := range c.TopUnderlyings {
		m.Underlyings = append(m.Underlyings, barModel{Label: u.Symbol, Count: u.Count, Percent: share(u.Count, maxSym)})
	}
	return m
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// pieGradient 以 conic-gradient 畫出圓餅圖；顏色與比例皆由伺服器產生。
func pieGradient(slices []dashboard.StrategySlice) template.CSS {
	if len(slices) == 0 {
		return template.CSS("background: #e5e7eb")
	}
	var b strings.Builder
	b.WriteString("background: conic-gradient(")
	start := 0.0
	for i, s := range slices {
		end := start + s.Percent
		if i == len(slices)-1 {
			end = 100
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %.2f%% %.2f%%", s.Color, start, end)
		start = end
	}
	b.WriteString(")")
	return template.CSS(b.String())
}

func newScatter(points []dashboard.RiskRewardPoint) scatterModel {
	m := scatterModel{Width: plotWidth, Height: plotHeight}
	var maxX, maxY float64
	for _, p := range points {
		maxX = max(maxX, p.Risk)
		maxY = max(maxY, p.Reward)
	}
	m.MaxX = display.FormatCurrency(maxX)
	m.MaxY = display.FormatCurrency(maxY)

	innerW := float64(plotWidth - 2*plotPadding)
	innerH := float64(plotHeight - 2*plotPadding)
	for _, p := range points {
		x, y := float64(plotPadding), float64(plotHeight-plotPadding)
		if maxX > 0 {
			x += p.Risk / maxX * innerW
		}
		if maxY > 0 {
			y -= p.Reward / maxY * innerH
		}
		m.Points = append(m.Points, scatterPoint{
			X: x,
			Y: y,
			Title: fmt.Sprintf("%s | Max Loss %s | Max Profit %s | Score %.1f | Win Rate %s",
				p.Name, display.FormatCurrency(p.Risk), display.FormatCurrency(p.Reward), p.Score, display.FormatPercent(p.Probability)),
		})
	}
	return m
}
