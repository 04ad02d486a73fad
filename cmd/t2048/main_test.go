package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func newReplayGame(seed int64) *t2048.Game {
	g := t2048.New(config.Default())
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func TestReplayPrintsFinalBoard(t *testing.T) {
	var out bytes.Buffer
	g := newReplayGame(3)
	if err := replay(context.Background(), g, strings.NewReader("left up # comment\nright down\n"), &out, false); err != nil {
		t.Fatalf("replay: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 4 board rows and a status line:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[4], "status: playing") {
		t.Errorf("status line = %q", lines[4])
	}
}

func TestReplayDeterministic(t *testing.T) {
	script := strings.Repeat("left down right up\n", 20)

	var a, b bytes.Buffer
	if err := replay(context.Background(), newReplayGame(11), strings.NewReader(script), &a, false); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if err := replay(context.Background(), newReplayGame(11), strings.NewReader(script), &b, false); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("same seed and script gave different results:\n%s\n%s", a.String(), b.String())
	}
}

func TestReplayFrames(t *testing.T) {
	var quiet, loud bytes.Buffer
	if err := replay(context.Background(), newReplayGame(5), strings.NewReader("left right"), &quiet, false); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if err := replay(context.Background(), newReplayGame(5), strings.NewReader("left right"), &loud, true); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.HasSuffix(loud.String(), quiet.String()) {
		t.Error("frame output should end with the same final board")
	}
	if loud.Len() <= quiet.Len() {
		t.Error("--frames should print animation frames")
	}
}

func TestReplaySkipsUnknownCommands(t *testing.T) {
	var out bytes.Buffer
	if err := replay(context.Background(), newReplayGame(1), strings.NewReader("left jump up"), &out, false); err != nil {
		t.Fatalf("unknown command should be skipped, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	logger, closer, err := newLogger("")
	if err != nil || logger == nil {
		t.Fatalf("newLogger(\"\") = %v, %v", logger, err)
	}
	closer.Close()

	path := filepath.Join(t.TempDir(), "logs", "t2048.log")
	logger, closer, err = newLogger(path)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello")
	closer.Close()
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(9); got != 9 {
		t.Errorf("resolveSeed(9) = %d", got)
	}
	if resolveSeed(0) == 0 {
		t.Error("resolveSeed(0) should pick a time-based seed")
	}
}
