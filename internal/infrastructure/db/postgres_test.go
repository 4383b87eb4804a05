package db

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"options-dashboard/internal/infrastructure/config"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestConnect_Empty(t *testing.T) {
	ctx := context.Background()
	cfg := config.DBConfig{DSN: ""}
	db, err := Connect(ctx, cfg)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if db != nil {
		t.Error("expected nil db for empty DSN")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	cfg := config.DBConfig{DSN: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", MaxOpenConns: 1}
	db, err := Connect(ctx, cfg)
	if err == nil {
		db.Close()
		t.Fatal("expected ping error for unreachable server")
	}
	if db != nil {
		t.Error("db should be nil on failure")
	}
}

func TestStatus_NotConfigured(t *testing.T) {
	if got := Status(context.Background(), nil); got != StatusNotConfigured {
		t.Fatalf("status = %q, want %q", got, StatusNotConfigured)
	}
}

func TestStatus_Ping(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()

	mock.ExpectPing()
	if got := Status(context.Background(), conn); got != StatusOK {
		t.Fatalf("status = %q, want ok", got)
	}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	got := Status(context.Background(), conn)
	if !strings.HasPrefix(got, "error: ") || !strings.Contains(got, "connection refused") {
		t.Fatalf("unexpected status %q", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
