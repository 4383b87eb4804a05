package httpapi

import (
	"database/sql"
	"embed"
	"html/template"
	"net/http"

	"options-dashboard/internal/application/dashboard"
	"options-dashboard/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const dashboardTemplate = "dashboard.html"

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine *gin.Engine
	view   *dashboard.ViewUseCase
	repo   dashboard.DatasetRepository
	db     *sql.DB
	logger *logrus.Logger
}

// NewServer 建立儀表板伺服器；repo 為 nil 時頁面與 API 回應 503，db 可為 nil。
func NewServer(cfg config.Config, repo dashboard.DatasetRepository, db *sql.DB, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	gin.SetMode(ginMode(cfg.HTTP.Mode))

	s := &Server{
		engine: gin.New(),
		view:   dashboard.NewViewUseCase(repo, cfg.Cache.TTL),
		repo:   repo,
		db:     db,
		logger: logger,
	}
	s.engine.HandleMethodNotAllowed = true
	s.engine.SetHTMLTemplate(mustParseTemplates())
	s.engine.Use(s.recovery(), requestID(), s.ginLogger(), corsMiddleware())
	s.registerRoutes()
	return s
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

func mustParseTemplates() *template.Template {
	funcs := template.FuncMap{
		"stateURL": stateURL,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// ginMode 只接受 gin 認得的模式，其餘一律視為 release。
func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
