package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"employee-directory/internal/config"
)

func TestRun_UnsupportedColorStopsBeforeStartup(t *testing.T) {
	staticDir := filepath.Join(t.TempDir(), "static")
	t.Setenv("APP_COLOR", "purple")
	t.Setenv("STATIC_DIR", staticDir)

	err := run(context.Background())
	if !errors.Is(err, config.ErrUnsupportedColor) {
		t.Fatalf("run() error = %v, want ErrUnsupportedColor", err)
	}
	if _, statErr := os.Stat(staticDir); !os.IsNotExist(statErr) {
		t.Errorf("static dir created before config was rejected (stat err = %v)", statErr)
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve a port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return addr
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	root := t.TempDir()
	addr := freeAddr(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE", filepath.Join(root, "employees.db"))
	t.Setenv("STATIC_DIR", filepath.Join(root, "static"))
	t.Setenv("LISTEN_ADDR", addr)
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	healthy := false
	for i := 0; i < 50 && !healthy; i++ {
		resp, err := http.Get("http://" + addr + "/health")
		if err == nil {
			healthy = resp.StatusCode == http.StatusOK
			resp.Body.Close()
		}
		if !healthy {
			time.Sleep(100 * time.Millisecond)
		}
	}
	if !healthy {
		cancel()
		t.Fatal("server never reported healthy")
	}

	if _, err := os.Stat(filepath.Join(root, "static")); err != nil {
		t.Errorf("static dir not created: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() error = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("run() did not return after cancellation")
	}
}
