package httpapi

import (
	"net/http"
	"strings"

	"options-dashboard/internal/application/dashboard"
	"options-dashboard/internal/application/display"
	domain "options-dashboard/internal/domain/dashboard"

	"github.com/gin-gonic/gin"
)

// handleDashboard 依 query 中的頁面狀態渲染整頁。
func (s *Server) handleDashboard(c *gin.Context) {
	state := parsePageState(c.Request.URL.Query())
	view, err := s.view.Page(c.Request.Context(), state)
	if err != nil {
		s.writeUseCaseError(c, err)
		return
	}
	c.HTML(http.StatusOK, dashboardTemplate, newPageModel(view))
}

func (s *Server) handleOpportunities(c *gin.Context) {
	q := c.Request.URL.Query()
	filters := parseFilterState(q)
	sortState := parseSortState(q)

	ctx := c.Request.Context()
	data, err := s.view.Snapshot(ctx)
	if err != nil {
		s.writeUseCaseError(c, err)
		return
	}
	opps, err := s.view.Derive(ctx, filters, sortState)
	if err != nil {
		s.writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(opps),
		"total":         len(data.Opportunities),
		"filters":       filters,
		"sort":          sortState,
		"opportunities": opps,
	})
}

func (s *Server) handleCharts(c *gin.Context) {
	charts, err := s.view.Charts(c.Request.Context())
	if err != nil {
		s.writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"charts":  charts,
	})
}

func (s *Server) handleOverview(c *gin.Context) {
	data, err := s.view.Snapshot(c.Request.Context())
	if err != nil {
		s.writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"market_overview": data.MarketOverview,
		"underlyings":     data.Underlyings,
		"generated_at":    data.GeneratedAt,
		"last_updated":    display.FormatTimestamp(data.GeneratedAt),
	})
}

func (s *Server) handleFilterOptions(c *gin.Context) {
	opts, err := s.view.FilterOptions(c.Request.Context())
	if err != nil {
		s.writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"symbols":      opts.Symbols,
		"strategies":   opts.Strategies,
		"option_types": opts.OptionTypes,
		"sliders": gin.H{
			paramMinScore:        dashboard.ScoreSlider,
			paramMinProbability:  dashboard.ProbabilitySlider,
			paramMaxDaysToExpiry: dashboard.DaysSlider,
		},
	})
}

// handleNextSort 回傳點擊排序欄位後的新排序狀態。
func (s *Server) handleNextSort(c *gin.Context) {
	field := strings.TrimSpace(c.Query(paramField))
	if field == "" {
		writeError(c, http.StatusBadRequest, errCodeBadRequest, "field required")
		return
	}
	next := parseSortState(c.Request.URL.Query()).Toggle(domain.SortField(field))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sort":    next,
		"label":   display.SortLabel(next),
		"known":   dashboard.KnownField(next.Field),
	})
}
