package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"options-dashboard/internal/infrastructure/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	connectPingTimeout = 5 * time.Second
	healthPingTimeout  = 2 * time.Second

	StatusOK            = "ok"
	StatusNotConfigured = "not_configured"
)

// Connect 開啟快照庫連線池；未設定 DSN 時回傳 nil，資料集改由檔案載入。
func Connect(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, nil
	}

	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.MaxIdleTime)

	if err := ping(ctx, conn, connectPingTimeout); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping snapshot db: %w", err)
	}
	return conn, nil
}

// Status 回報健康檢查用的連線狀態字串；conn 為 nil 代表未設定資料庫。
func Status(ctx context.Context, conn *sql.DB) string {
	if conn == nil {
		return StatusNotConfigured
	}
	if err := ping(ctx, conn, healthPingTimeout); err != nil {
		return "error: " + err.Error()
	}
	return StatusOK
}

// ping 在呼叫端未設 deadline 時補上 timeout。
func ping(ctx context.Context, conn *sql.DB, timeout time.Duration) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return conn.PingContext(ctx)
}
