package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/tui-maze/internal/games/maze"
)

func TestSSHServerReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer ln.Close()

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = ln.Addr().String()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == nil {
			t.Error("ListenAndServe() should fail on a busy address")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return")
	}
	if srv.store != nil {
		t.Error("store should be closed after a listen failure")
	}
}

func TestSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "nope"
	cfg.Logger = log.New(io.Discard)

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer() should reject an unknown game")
	}
}
