package dataset

import (
	"context"
	"fmt"
	"os"

	domain "options-dashboard/internal/domain/dashboard"
)

// FileSource 從本機 JSON 檔載入資料集。
type FileSource struct {
	Path string
}

// NewFileSource 建立檔案來源。
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load 讀取並解析檔案。
func (s *FileSource) Load(ctx context.Context) (domain.DashboardData, error) {
	if err := ctx.Err(); err != nil {
		return domain.DashboardData{}, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return domain.DashboardData{}, fmt.Errorf("open dataset %s: %w", s.Path, err)
	}
	defer f.Close()

	data, err := Decode(f)
	if err != nil {
		return domain.DashboardData{}, fmt.Errorf("load dataset %s: %w", s.Path, err)
	}
	return data, nil
}

// Describe 回傳來源描述（供健康檢查與日誌）。
func (s *FileSource) Describe() string {
	return "file:" + s.Path
}
