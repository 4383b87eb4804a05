package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	domain "options-dashboard/internal/domain/dashboard"
	"options-dashboard/internal/infrastructure/dataset"
)

// Store 保存啟動時載入的資料集；載入後不再變動，可併發讀取。
type Store struct {
	data     domain.DashboardData
	source   string
	loadedAt time.Time
}

// Info 為資料集摘要，供健康檢查使用。
type Info struct {
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
	GeneratedAt   string    `json:"generated_at"`
	Opportunities int       `json:"opportunities"`
	Underlyings   int       `json:"underlyings"`
}

// NewStore 以資料集的複本建立 Store，之後呼叫端對原資料的修改不影響 Store。
func NewStore(data domain.DashboardData, source string) *Store {
	return &Store{
		data:     clone(dataset.Normalize(data)),
		source:   source,
		loadedAt: time.Now(),
	}
}

// Load 透過 loader 載入資料集並建立 Store；資料品質警告一併回傳，不視為錯誤。
func Load(ctx context.Context, loader dataset.Loader) (*Store, []string, error) {
	data, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset from %s: %w", loader.Describe(), err)
	}
	return NewStore(data, loader.Describe()), data.Validate(), nil
}

// Dataset 回傳資料集複本。
func (s *Store) Dataset(ctx context.Context) (domain.DashboardData, error) {
	if err := ctx.Err(); err != nil {
		return domain.DashboardData{}, err
	}
	return clone(s.data), nil
}

// Info 回傳資料集摘要。
func (s *Store) Info() Info {
	return Info{
		Source:        s.source,
		LoadedAt:      s.loadedAt,
		GeneratedAt:   s.data.GeneratedAt,
		Opportunities: len(s.data.Opportunities),
		Underlyings:   len(s.data.Underlyings),
	}
}

func clone(d domain.DashboardData) domain.DashboardData {
	out := d
	out.Opportunities = slices.Clone(d.Opportunities)
	out.Underlyings = slices.Clone(d.Underlyings)
	out.MarketOverview.StrategyDistribution = maps.Clone(d.MarketOverview.StrategyDistribution)
	if top := d.MarketOverview.TopScoringOpportunity; top != nil {
		cp := *top
		out.MarketOverview.TopScoringOpportunity = &cp
	}
	return out
}
