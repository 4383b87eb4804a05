package httpapi

import (
	"errors"
	"net/http"

	"options-dashboard/internal/application/dashboard"

	"github.com/gin-gonic/gin"
)

const (
	errCodeBadRequest       = "BAD_REQUEST"
	errCodeNotFound         = "NOT_FOUND"
	errCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	errCodeDatasetNotLoaded = "DATASET_NOT_LOADED"
	errCodeInternal         = "INTERNAL_ERROR"
)

func writeError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"error":      msg,
		"error_code": code,
	})
}

// writeUseCaseError 將查詢用例的錯誤轉成對應的狀態碼。
func (s *Server) writeUseCaseError(c *gin.Context, err error) {
	if errors.Is(err, dashboard.ErrDatasetNotLoaded) {
		writeError(c, http.StatusServiceUnavailable, errCodeDatasetNotLoaded, err.Error())
		return
	}
	s.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("dashboard query failed")
	writeError(c, http.StatusInternalServerError, errCodeInternal, "internal error")
}
