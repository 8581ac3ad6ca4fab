package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-guwen"
	"github.com/alnah/go-guwen/internal/config"
)

// testEnv returns an Environment with buffered output, a fixed clock and
// no GOMAXPROCS adjustment.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Environment{
		Now:         func() time.Time { return fixed },
		Stdout:      stdout,
		Stderr:      stderr,
		SetMaxProcs: func(func(string, ...interface{})) {},
	}, stdout, stderr
}

// writeFiles creates files under dir. Keys are relative paths.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("creating dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

// writeDefaultSources writes one small source per built-in day.
func writeDefaultSources(t *testing.T, dir string) {
	t.Helper()
	files := make(map[string]string)
	for i, day := range config.DefaultDays() {
		files[day.File] = day.Title + "\n\n## 01 篇" + string(rune('一'+i)) + "\n\n子曰：学而时习之。\n"
	}
	writeFiles(t, dir, files)
}

// testConfig returns a config with n days reading from src and writing to out.
func testConfig(src, out string, n int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Source.Dir = src
	cfg.Output.Dir = out
	cfg.Days = cfg.Days[:n]
	return cfg
}

// mockConverter records calls and returns canned results.
type mockConverter struct {
	mu         sync.Mutex
	inputs     []guwen.Input
	index      *guwen.IndexInput
	convertErr error
	failOn     string // Convert fails when Markdown equals failOn
	indexErr   error
	styleErr   error
}

func (m *mockConverter) Convert(ctx context.Context, input guwen.Input) (*guwen.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.convertErr != nil {
		return nil, m.convertErr
	}
	if m.failOn != "" && input.Markdown == m.failOn {
		return nil, guwen.ErrPageRender
	}
	return &guwen.Result{
		HTML:     []byte("<html>" + input.Title + "</html>"),
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Sections: 1,
	}, nil
}

func (m *mockConverter) ConvertIndex(ctx context.Context, input guwen.IndexInput) ([]byte, error) {
	m.mu.Lock()
	m.index = &input
	m.mu.Unlock()

	if m.indexErr != nil {
		return nil, m.indexErr
	}
	return []byte("<html>index</html>"), nil
}

func (m *mockConverter) Style() (string, error) {
	if m.styleErr != nil {
		return "", m.styleErr
	}
	return "body{}", nil
}

func (m *mockConverter) navByTitle() map[string]guwen.Nav {
	m.mu.Lock()
	defer m.mu.Unlock()
	nav := make(map[string]guwen.Nav, len(m.inputs))
	for _, in := range m.inputs {
		nav[in.Title] = in.Nav
	}
	return nav
}
