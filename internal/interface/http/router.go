package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleDashboard)

	api := s.engine.Group("/api")
	api.GET("/ping", s.handlePing)
	api.GET("/health", s.handleHealth)
	api.GET("/opportunities", s.handleOpportunities)
	api.GET("/charts", s.handleCharts)
	api.GET("/overview", s.handleOverview)
	api.GET("/filters/options", s.handleFilterOptions)
	api.GET("/state/next-sort", s.handleNextSort)

	s.engine.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, errCodeNotFound, "not found")
	})
	s.engine.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, errCodeMethodNotAllowed, "method not allowed")
	})
}
