package httpapi

import (
	"net/http"
	"time"

	"options-dashboard/internal"
	"options-dashboard/internal/infra/memory"
	"options-dashboard/internal/infrastructure/db"

	"github.com/gin-gonic/gin"
)

// datasetInfo 由可回報資料集摘要的 repository 實作（例如 memory.Store）。
type datasetInfo interface {
	Info() memory.Info
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"status":    "alive",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	body := gin.H{
		"success": true,
		"health":  "ok",
		"db":      db.Status(c.Request.Context(), s.db),
		"time":    time.Now().Format(time.RFC3339),
	}
	if info, ok := s.repo.(datasetInfo); ok && !internal.IsNil(s.repo) {
		body["dataset"] = info.Info()
	} else {
		body["health"] = "degraded"
		body["dataset"] = nil
	}
	c.JSON(http.StatusOK, body)
}
