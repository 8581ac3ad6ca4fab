package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantLayers int
		wantErr    error
	}{
		{name: "embedded only", path: "", wantLayers: 1},
		{name: "custom directory", path: t.TempDir(), wantLayers: 2},
		{name: "missing directory", path: filepath.Join(t.TempDir(), "missing"), wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver, err := NewAssetResolver(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewAssetResolver() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAssetResolver() error = %v", err)
			}
			if got := resolver.Layers(); got != tt.wantLayers {
				t.Errorf("Layers() = %d, want %d", got, tt.wantLayers)
			}
		})
	}
}

func TestAssetResolver_CustomFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "templates/page.html", "custom page")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom template wins", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(PageTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "custom page" {
			t.Errorf("LoadTemplate() = %q, want custom content", got)
		}
	})

	t.Run("missing template falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(IndexTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(got, "day-list") {
			t.Error("expected embedded index template")
		}
	})

	t.Run("missing style falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(got, ".passage") {
			t.Error("expected embedded default style")
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("vermilion")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("validation errors stop the chain", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("../default")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

// stubLoader returns fixed results, for exercising the chain walk.
type stubLoader struct {
	content string
	err     error
	calls   int
}

func (s *stubLoader) LoadStyle(string) (string, error) {
	s.calls++
	return s.content, s.err
}

func (s *stubLoader) LoadTemplate(string) (string, error) {
	s.calls++
	return s.content, s.err
}

func TestAssetResolver_ReadErrorStopsChain(t *testing.T) {
	t.Parallel()

	broken := &stubLoader{err: ErrAssetRead}
	fallback := &stubLoader{content: "fallback"}
	r := &AssetResolver{chain: []AssetLoader{broken, fallback}}

	if _, err := r.LoadTemplate(PageTemplateName); !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadTemplate() error = %v, want ErrAssetRead", err)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
}
