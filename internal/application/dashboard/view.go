package dashboard

import (
	"context"
	"errors"
	"slices"
	"time"

	"options-dashboard/internal"
	domain "options-dashboard/internal/domain/dashboard"

	"github.com/patrickmn/go-cache"
)

// ErrDatasetNotLoaded 表示資料集尚未載入。
var ErrDatasetNotLoaded = errors.New("dashboard dataset not loaded")

// DatasetRepository 提供唯讀資料集，具體來源（檔案、資料庫）自行實作。
type DatasetRepository interface {
	Dataset(ctx context.Context) (domain.DashboardData, error)
}

const (
	chartsCacheKey  = "charts"
	optionsCacheKey = "filter-options"

	// MaxCachedViews 為列表推導快取的筆數上限，額滿後新的狀態直接計算不快取。
	MaxCachedViews = 256
)

// ViewUseCase 聚合列表推導、圖表與篩選選項等查詢行為。
type ViewUseCase struct {
	repo  DatasetRepository
	cache *cache.Cache
}

// NewViewUseCase 建立查詢用例；ttl < 0 代表停用快取，ttl == 0 代表永不過期。
// 快取只是加速，停用時結果必須相同。
func NewViewUseCase(repo DatasetRepository, ttl time.Duration) *ViewUseCase {
	u := &ViewUseCase{repo: repo}
	switch {
	case ttl < 0:
	case ttl == 0:
		u.cache = cache.New(cache.NoExpiration, 0)
	default:
		u.cache = cache.New(ttl, 2*ttl)
	}
	return u
}

// Derive 依條件篩選後排序，回傳新切片，不修改資料集。
// 只有篩選面板能產生的狀態才會寫入快取，任意 query 值一律即時計算。
func (u *ViewUseCase) Derive(ctx context.Context, filters domain.FilterState, sortState domain.SortState) ([]domain.Opportunity, error) {
	key := "view|" + filters.Key() + "|" + sortState.Key()
	if u.cache != nil {
		if v, ok := u.cache.Get(key); ok {
			return slices.Clone(v.([]domain.Opportunity)), nil
		}
	}

	data, err := u.dataset(ctx)
	if err != nil {
		return nil, err
	}
	out := Sort(Filter(data.Opportunities, filters), sortState)

	if u.cache != nil && u.cache.ItemCount() < MaxCachedViews && Canonical(filters, sortState, u.optionsFor(data)) {
		u.cache.SetDefault(key, slices.Clone(out))
	}
	return out, nil
}

// Canonical 回傳狀態是否落在篩選面板可選的值上：選單值存在於資料集、
// 門檻對齊滑桿刻度、排序欄位已知。
func Canonical(f domain.FilterState, s domain.SortState, opts FilterOptions) bool {
	if f.StrategyType != "" && !slices.Contains(opts.Strategies, f.StrategyType) {
		return false
	}
	if f.UnderlyingSymbol != "" && !slices.Contains(opts.Symbols, f.UnderlyingSymbol) {
		return false
	}
	if f.OptionType != "" && !domain.OptionType(f.OptionType).Valid() {
		return false
	}
	if !ScoreSlider.OnStep(f.MinScore) || !ProbabilitySlider.OnStep(f.MinProbability) {
		return false
	}
	if f.MaxDaysToExpiry != DaysSlider.Max && !DaysSlider.OnStep(float64(f.MaxDaysToExpiry)) {
		return false
	}
	return KnownField(s.Field) && (s.Direction == domain.SortAsc || s.Direction == domain.SortDesc)
}

// Charts 回傳以完整資料集計算的圖表（不受篩選影響）。
func (u *ViewUseCase) Charts(ctx context.Context) (Charts, error) {
	if u.cache != nil {
		if v, ok := u.cache.Get(chartsCacheKey); ok {
			return v.(Charts), nil
		}
	}
	data, err := u.dataset(ctx)
	if err != nil {
		return Charts{}, err
	}
	charts := BuildCharts(data)
	if u.cache != nil {
		u.cache.SetDefault(chartsCacheKey, charts)
	}
	return charts, nil
}

// FilterOptions 回傳篩選面板的下拉選項。
func (u *ViewUseCase) FilterOptions(ctx context.Context) (FilterOptions, error) {
	if u.cache != nil {
		if v, ok := u.cache.Get(optionsCacheKey); ok {
			return v.(FilterOptions), nil
		}
	}
	data, err := u.dataset(ctx)
	if err != nil {
		return FilterOptions{}, err
	}
	return u.optionsFor(data), nil
}

func (u *ViewUseCase) optionsFor(data domain.DashboardData) FilterOptions {
	if u.cache != nil {
		if v, ok := u.cache.Get(optionsCacheKey); ok {
			return v.(FilterOptions)
		}
	}
	opts := BuildFilterOptions(data.Opportunities)
	if u.cache != nil {
		u.cache.SetDefault(optionsCacheKey, opts)
	}
	return opts
}

// Snapshot 回傳資料集本身（市場摘要、標的、產生時間）。
func (u *ViewUseCase) Snapshot(ctx context.Context) (domain.DashboardData, error) {
	return u.dataset(ctx)
}

// PageView 為渲染整頁所需的全部資料。
type PageView struct {
	State         domain.PageState
	Overview      domain.MarketOverview
	Underlyings   []domain.Underlying
	GeneratedAt   string
	Opportunities []domain.Opportunity
	TotalCount    int
	Charts        *Charts
	Options       FilterOptions
}

// Empty 回傳篩選結果是否為空。
func (p PageView) Empty() bool {
	return len(p.Opportunities) == 0
}

// Page 依頁面狀態組出整頁資料；圖表隱藏時不計算。
func (u *ViewUseCase) Page(ctx context.Context, state domain.PageState) (PageView, error) {
	data, err := u.dataset(ctx)
	if err != nil {
		return PageView{}, err
	}
	opps, err := u.Derive(ctx, state.Filters, state.Sort)
	if err != nil {
		return PageView{}, err
	}
	opts, err := u.FilterOptions(ctx)
	if err != nil {
		return PageView{}, err
	}

	view := PageView{
		State:         state,
		Overview:      data.MarketOverview,
		Underlyings:   data.Underlyings,
		GeneratedAt:   data.GeneratedAt,
		Opportunities: opps,
		TotalCount:    len(data.Opportunities),
		Options:       opts,
	}
	if state.ShowCharts {
		charts, err := u.Charts(ctx)
		if err != nil {
			return PageView{}, err
		}
		view.Charts = &charts
	}
	return view, nil
}

func (u *ViewUseCase) dataset(ctx context.Context) (domain.DashboardData, error) {
	if internal.IsNil(u.repo) {
		return domain.DashboardData{}, ErrDatasetNotLoaded
	}
	return u.repo.Dataset(ctx)
}
