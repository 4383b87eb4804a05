package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"options-dashboard/internal/application/dashboard"
	"options-dashboard/internal/application/display"
	domain "options-dashboard/internal/domain/dashboard"
	"options-dashboard/internal/infra/memory"
	"options-dashboard/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() domain.DashboardData {
	top := domain.Opportunity{
		ID: "xiu-c-42", UnderlyingSymbol: "XIU", UnderlyingPrice: 41.2, StrategyType: "Long Call", OptionType: domain.OptionCall,
		Strike: 42, DaysToExpiry: 30, ExpiryDate: "2025-07-18", MarketPrice: 1.1, Bid: 1.05, Ask: 1.15,
		Volume: 1200, OpenInterest: 5400, ImpliedVolatility: 18.4, Delta: 0.45, Theta: -0.03, Vega: 0.05,
		Breakeven: 43.1, MaxLoss: 110, MaxProfit: domain.UnboundedProfit(), ProbabilityOfProfit: 74,
		ExpectedValue: 12.5, Score: 88, RiskRewardRatio: 2.4,
	}
	return domain.DashboardData{
		GeneratedAt: "2025-06-18T09:30:00",
		Opportunities: []domain.Opportunity{
			top,
			{
				ID: "zeb-p-37", UnderlyingSymbol: "ZEB", UnderlyingPrice: 38.6, StrategyType: "Long Put", OptionType: domain.OptionPut,
				Strike: 37.5, DaysToExpiry: 60, ExpiryDate: "2025-08-15", MarketPrice: 0.8, MaxLoss: 80,
				MaxProfit: domain.BoundedProfit(3670), ProbabilityOfProfit: 41, ExpectedValue: -4, Score: 55,
			},
			{
				ID: "xeg-p-15", UnderlyingSymbol: "XEG", UnderlyingPrice: 15.9, StrategyType: "Long Put", OptionType: domain.OptionPut,
				Strike: 15, DaysToExpiry: 14, ExpiryDate: "2025-07-02", MarketPrice: 0.25, MaxLoss: 25,
				MaxProfit: domain.BoundedProfit(1475), ProbabilityOfProfit: 62, ExpectedValue: 3, Score: 71,
			},
		},
		MarketOverview: domain.MarketOverview{
			TotalOpportunities:     3,
			AvgScore:               71.3,
			AvgProbabilityOfProfit: 59,
			AvgExpectedValue:       3.8,
			TotalUnderlyings:       3,
			StrategyDistribution:   map[string]int{"Long Call": 1, "Long Put": 2},
			TopScoringOpportunity:  &top,
			HighProbabilityCount:   1,
			PositiveEVCount:        2,
		},
		Underlyings: []domain.Underlying{{Symbol: "XIU", CurrentPrice: 41.2, TotalOptions: 1}},
	}
}

func newTestServer(t *testing.T, repo dashboard.DatasetRepository) *Server {
	t.Helper()
	cfg := config.Config{}
	cfg.HTTP.Mode = gin.TestMode
	cfg.Cache.TTL = -1
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewServer(cfg, repo, nil, logger)
}

func doGet(s *Server, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestServer_DashboardPage(t *testing.T) {
	s := newTestServer(t, memory.NewStore(testData(), "test"))

	t.Run("Default", func(t *testing.T) {
		w := doGet(s, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

		body := w.Body.String()
		assert.Contains(t, body, display.DashboardTitle)
		assert.Contains(t, body, "Showing 3 opportunities")
		assert.Contains(t, body, "Sorted by score (highest first)")
		assert.Contains(t, body, "Hide Charts")
		assert.Contains(t, body, "Risk vs Reward (Top 20)")
		assert.Contains(t, body, "∞")
		assert.NotContains(t, body, "$999999")
		assert.Contains(t, body, "Last updated: Jun 18, 2025, 09:30 AM")
		// 第一名為分數最高者
		assert.Less(t, strings.Index(body, `id="xiu-c-42"`), strings.Index(body, `id="xeg-p-15"`))
	})

	t.Run("ChartsHidden", func(t *testing.T) {
		w := doGet(s, "/?charts=0")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotContains(t, body, "Risk vs Reward (Top 20)")
		assert.Contains(t, body, "Show Charts")
		assert.Contains(t, body, `name="charts" value="0"`)
	})

	t.Run("EmptyState", func(t *testing.T) {
		w := doGet(s, "/?min_score=95")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "No opportunities found")
		assert.Contains(t, body, "Reset Filters")
		assert.Contains(t, body, "Showing 0 opportunities")
	})

	t.Run("MalformedParamsFallBack", func(t *testing.T) {
		w := doGet(s, "/?min_score=abc&max_days_to_expiry=x&option_type=straddle")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Showing 3 opportunities")
	})

	t.Run("SortAscending", func(t *testing.T) {
		w := doGet(s, "/?sort=days_to_expiry&dir=asc")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Sorted by days to expiry (lowest first)")
		assert.Less(t, strings.Index(body, `id="xeg-p-15"`), strings.Index(body, `id="zeb-p-37"`))
	})
}

func TestServer_Opportunities(t *testing.T) {
	s := newTestServer(t, memory.NewStore(testData(), "test"))

	w := doGet(s, "/api/opportunities?option_type=put&sort=score&dir=asc")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success       bool `json:"success"`
		Count         int  `json:"count"`
		Total         int  `json:"total"`
		Opportunities []struct {
			ID        string `json:"id"`
			MaxProfit any    `json:"max_profit"`
		} `json:"opportunities"`
		Sort domain.SortState `json:"sort"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Opportunities, 2)
	assert.Equal(t, "zeb-p-37", resp.Opportunities[0].ID)
	assert.Equal(t, "xeg-p-15", resp.Opportunities[1].ID)
	assert.Equal(t, domain.SortAsc, resp.Sort.Direction)
}

func TestServer_ReadOnlyEndpoints(t *testing.T) {
	s := newTestServer(t, memory.NewStore(testData(), "test"))

	t.Run("Charts", func(t *testing.T) {
		w := doGet(s, "/api/charts")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Charts dashboard.Charts `json:"charts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Charts.StrategyDistribution, 2)
		assert.Equal(t, "Put", resp.Charts.StrategyDistribution[0].Name)
		assert.Len(t, resp.Charts.ScoreDistribution, 5)
		assert.Len(t, resp.Charts.RiskReward, 3)
	})

	t.Run("Overview", func(t *testing.T) {
		body := decode(t, doGet(s, "/api/overview"))
		assert.Equal(t, "2025-06-18T09:30:00", body["generated_at"])
		assert.Equal(t, "Jun 18, 2025, 09:30 AM", body["last_updated"])
		overview := body["market_overview"].(map[string]any)
		assert.EqualValues(t, 3, overview["total_opportunities"])
	})

	t.Run("FilterOptions", func(t *testing.T) {
		body := decode(t, doGet(s, "/api/filters/options"))
		assert.Equal(t, []any{"XEG", "XIU", "ZEB"}, body["symbols"])
		assert.Equal(t, []any{"Long Call", "Long Put"}, body["strategies"])
		assert.Contains(t, body["sliders"], paramMinScore)
	})
}

func TestServer_NextSort(t *testing.T) {
	s := newTestServer(t, memory.NewStore(testData(), "test"))

	cases := []struct {
		name   string
		target string
		field  string
		dir    string
	}{
		{"SameFieldFlips", "/api/state/next-sort?field=score", "score", "asc"},
		{"FlipBack", "/api/state/next-sort?field=score&sort=score&dir=asc", "score", "desc"},
		{"NewFieldStartsDesc", "/api/state/next-sort?field=days_to_expiry&sort=score&dir=asc", "days_to_expiry", "desc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := decode(t, doGet(s, tc.target))
			next := body["sort"].(map[string]any)
			assert.Equal(t, tc.field, next["field"])
			assert.Equal(t, tc.dir, next["direction"])
		})
	}

	t.Run("MissingField", func(t *testing.T) {
		w := doGet(s, "/api/state/next-sort")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errCodeBadRequest, decode(t, w)["error_code"])
	})
}

func TestServer_Errors(t *testing.T) {
	s := newTestServer(t, memory.NewStore(testData(), "test"))

	t.Run("NotFound", func(t *testing.T) {
		w := doGet(s, "/api/unknown")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errCodeNotFound, decode(t, w)["error_code"])
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/charts", nil)
		s.Handler().ServeHTTP(w, req)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, errCodeMethodNotAllowed, decode(t, w)["error_code"])
	})

	t.Run("DatasetNotLoaded", func(t *testing.T) {
		empty := newTestServer(t, nil)
		for _, target := range []string{"/", "/api/opportunities", "/api/charts", "/api/overview", "/api/filters/options"} {
			w := doGet(empty, target)
			require.Equal(t, http.StatusServiceUnavailable, w.Code, target)
			assert.Equal(t, errCodeDatasetNotLoaded, decode(t, w)["error_code"], target)
		}
	})

	t.Run("DegenerateDataset", func(t *testing.T) {
		bare := newTestServer(t, memory.NewStore(domain.DashboardData{}, "test"))
		w := doGet(bare, "/")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "No opportunities found")
		assert.Contains(t, body, "No strategy data")
		assert.NotContains(t, body, "Top Opportunity")
	})
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.DebugMode, ginMode("debug"))
	assert.Equal(t, gin.TestMode, ginMode("test"))
	assert.Equal(t, gin.ReleaseMode, ginMode(""))
	assert.Equal(t, gin.ReleaseMode, ginMode("verbose"))
}
