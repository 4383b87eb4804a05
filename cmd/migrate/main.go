package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"options-dashboard/internal/infrastructure/config"
	"options-dashboard/internal/infrastructure/persistence/postgres"

	_ "github.com/lib/pq"
)

const commandTimeout = 30 * time.Second

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	migrationsPath := flag.String("dir", "db/migrations", "path to migrations directory")
	status := flag.Bool("status", false, "list stored snapshots and exit")
	flag.Parse()

	cfg, err := config.LoadFromFile(*cfgPath)
	if err != nil {
		log.Fatalf("讀取組態失敗: %v", err)
	}

	if cfg.DB.DSN == "" {
		log.Fatal("config.db.dsn 未設定，無法執行 migration")
	}

	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		log.Fatalf("連線資料庫失敗: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	repo := postgres.NewSnapshotRepo(db)

	if *status {
		printStatus(ctx, repo)
		return
	}

	files, err := migrationFiles(*migrationsPath)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			log.Fatalf("讀取檔案 %s 失敗: %v", f, err)
		}
		log.Printf("執行 migration: %s", filepath.Base(f))
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			log.Fatalf("執行 %s 失敗: %v", filepath.Base(f), err)
		}
	}
	fmt.Println("Migration 完成")
}

// migrationFiles 回傳目錄下依檔名排序的 .sql 檔。
func migrationFiles(dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("解析 migrations 路徑失敗: %w", err)
	}
	if _, err := os.Stat(absDir); err != nil {
		return nil, fmt.Errorf("migrations 目錄不存在: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(absDir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("讀取 migrations 失敗: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("找不到任何 .sql migration 檔案: %s", absDir)
	}
	sort.Strings(files)
	return files, nil
}

func printStatus(ctx context.Context, repo *postgres.SnapshotRepo) {
	list, err := repo.ListSnapshots(ctx, 0)
	if err != nil {
		log.Fatalf("查詢快照失敗: %v", err)
	}
	if len(list) == 0 {
		fmt.Println("尚無任何快照")
		return
	}
	for _, s := range list {
		fmt.Printf("%6d  generated_at=%s  created_at=%s\n",
			s.ID, s.GeneratedAt.Format(time.RFC3339), s.CreatedAt.Format(time.RFC3339))
	}
}
