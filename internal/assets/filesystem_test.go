package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeAsset creates dir/rel with content, creating parents.
func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "file.txt", "x")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid directory", path: dir},
		{name: "relative path", path: "."},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: filepath.Join(dir, "missing"), wantErr: ErrInvalidBasePath},
		{name: "file instead of directory", path: filepath.Join(dir, "file.txt"), wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewFilesystemLoader(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewFilesystemLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFilesystemLoader(%q) error = %v", tt.path, err)
			}
			if !filepath.IsAbs(loader.basePath) {
				t.Errorf("basePath = %q, want absolute", loader.basePath)
			}
		})
	}
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/ink.css", "body { color: black; }")
	writeAsset(t, dir, "templates/page.html", "<p>{{.Title}}</p>")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		want    string
		wantErr error
	}{
		{name: "style found", load: loader.LoadStyle, asset: "ink", want: "body { color: black; }"},
		{name: "style missing", load: loader.LoadStyle, asset: DefaultStyleName, wantErr: ErrStyleNotFound},
		{name: "template found", load: loader.LoadTemplate, asset: PageTemplateName, want: "<p>{{.Title}}</p>"},
		{name: "template missing", load: loader.LoadTemplate, asset: IndexTemplateName, wantErr: ErrTemplateNotFound},
		{name: "invalid name", load: loader.LoadTemplate, asset: "../page", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.asset)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("load(%q) error = %v, want %v", tt.asset, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("load(%q) error = %v", tt.asset, err)
			}
			if got != tt.want {
				t.Errorf("load(%q) = %q, want %q", tt.asset, got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	outside := t.TempDir()
	writeAsset(t, outside, "secret.html", "secret")

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(base, "templates", "page.html")
	if err := os.Symlink(filepath.Join(outside, "secret.html"), link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadTemplate(PageTemplateName)
	if !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadTemplate() = %q, %v, want ErrAssetRead", got, err)
	}
}

func TestFilesystemLoader_SymlinkInside(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	base := t.TempDir()
	writeAsset(t, base, "shared/ink.css", "ink")
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(filepath.Join("..", "shared", "ink.css"), filepath.Join(base, "styles", "ink.css")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if got, err := loader.LoadStyle("ink"); err != nil || got != "ink" {
		t.Errorf("LoadStyle() = %q, %v, want symlink inside base followed", got, err)
	}
}
