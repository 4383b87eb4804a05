package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	domain "options-dashboard/internal/domain/dashboard"
)

// Loader 於啟動時載入一次完整資料集。
type Loader interface {
	Load(ctx context.Context) (domain.DashboardData, error)
	Describe() string
}

// Decode 解析 DashboardData JSON，並將缺漏的集合正規化為空值。
func Decode(r io.Reader) (domain.DashboardData, error) {
	var data domain.DashboardData
	dec := json.NewDecoder(r)
	if err := dec.Decode(&data); err != nil {
		return domain.DashboardData{}, fmt.Errorf("decode dashboard data: %w", err)
	}
	return Normalize(data), nil
}

// Normalize 讓空資料集（null 陣列或對應表）也能正常渲染。
func Normalize(data domain.DashboardData) domain.DashboardData {
	if data.Opportunities == nil {
		data.Opportunities = []domain.Opportunity{}
	}
	if data.Underlyings == nil {
		data.Underlyings = []domain.Underlying{}
	}
	if data.MarketOverview.StrategyDistribution == nil {
		data.MarketOverview.StrategyDistribution = map[string]int{}
	}
	return data
}
