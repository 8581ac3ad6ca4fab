package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple name", input: "default", wantErr: nil},
		{name: "hyphenated name", input: "ink-wash", wantErr: nil},
		{name: "empty name", input: "", wantErr: ErrInvalidAssetName},
		{name: "blank name", input: "   ", wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "../secret", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: "..\\secret", wantErr: ErrInvalidAssetName},
		{name: "dot changes extension", input: "page.tmpl", wantErr: ErrInvalidAssetName},
		{name: "null byte", input: "page\x00", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLoadStyle_Default(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyleName, err)
	}

	// Every class emitted by the block renderer needs a rule.
	for _, class := range []string{
		".passage", ".original-text", ".notes", ".note-key", ".key-sentence",
		".word-detail", ".word-pos", ".example-trans", ".translations", ".em-dot",
	} {
		if !strings.Contains(css, class) {
			t.Errorf("default style missing %s", class)
		}
	}
}

func TestLoadTemplate_BuiltIns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		template    string
		wantContain []string
	}{
		{
			name:        "page template",
			template:    PageTemplateName,
			wantContain: []string{`lang="zh-CN"`, "{{.Translations}}", "本日篇目", "page-nav"},
		},
		{
			name:        "index template",
			template:    IndexTemplateName,
			wantContain: []string{"{{.Intro}}", "range .Days", "day-list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadTemplate(tt.template)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", tt.template, err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("LoadTemplate(%q) should contain %q", tt.template, want)
				}
			}
		})
	}
}
