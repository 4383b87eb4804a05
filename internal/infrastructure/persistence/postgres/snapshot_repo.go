package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain "options-dashboard/internal/domain/dashboard"
	"options-dashboard/internal/infrastructure/dataset"
)

// ErrNoSnapshot 表示資料表中尚無任何快照。
var ErrNoSnapshot = errors.New("no dashboard snapshot stored")

// SnapshotRepo 從 dashboard_snapshots 讀取資料集（唯讀）。
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepo 建立快照讀取實例。
func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load 取 generated_at 最新的一筆快照；payload 未帶 generated_at 時以欄位值補上。
func (r *SnapshotRepo) Load(ctx context.Context) (domain.DashboardData, error) {
	const q = `
SELECT payload, generated_at
FROM dashboard_snapshots
ORDER BY generated_at DESC, id DESC
LIMIT 1;
`
	var (
		payload     []byte
		generatedAt time.Time
	)
	if err := r.db.QueryRowContext(ctx, q).Scan(&payload, &generatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DashboardData{}, ErrNoSnapshot
		}
		return domain.DashboardData{}, fmt.Errorf("query latest snapshot: %w", err)
	}

	data, err := dataset.Decode(bytes.NewReader(payload))
	if err != nil {
		return domain.DashboardData{}, err
	}
	if data.GeneratedAt == "" {
		data.GeneratedAt = generatedAt.UTC().Format(time.RFC3339)
	}
	return data, nil
}

// Describe 回傳來源描述。
func (r *SnapshotRepo) Describe() string {
	return "postgres:dashboard_snapshots"
}

// SnapshotInfo 為快照清單的一列（不含 payload）。
type SnapshotInfo struct {
	ID          int64     `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListSnapshots 依時間倒序列出快照，供維運檢視。
func (r *SnapshotRepo) ListSnapshots(ctx context.Context, limit int) ([]SnapshotInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, generated_at, created_at
FROM dashboard_snapshots
ORDER BY generated_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var s SnapshotInfo
		if err := rows.Scan(&s.ID, &s.GeneratedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
