package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   string
		checkFunc func(*testing.T, *Settings)
	}{
		{
			name: "valid settings",
			content: `log:
  level: debug
output: json
history:
  path: checks.db
`,
			checkFunc: func(t *testing.T, s *Settings) {
				if s.Log.Level != "debug" {
					t.Errorf("expected log level debug, got %s", s.Log.Level)
				}
				if s.Output != "json" {
					t.Errorf("expected output json, got %s", s.Output)
				}
				if s.History.Path != "checks.db" {
					t.Errorf("expected history path checks.db, got %s", s.History.Path)
				}
			},
		},
		{
			name:    "empty settings are valid",
			content: "",
			checkFunc: func(t *testing.T, s *Settings) {
				if s.Log.Level != "" || s.Output != "" {
					t.Errorf("expected zero-value settings, got %+v", s)
				}
			},
		},
		{
			name:    "unknown log level is rejected",
			content: "log:\n  level: loud\n",
			wantErr: "invalid settings",
		},
		{
			name:    "unknown output is rejected",
			content: "output: xml\n",
			wantErr: "invalid settings",
		},
		{
			name:    "malformed YAML is rejected",
			content: "log: [unclosed\n",
			wantErr: "invalid YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)

			s, err := loadSettings(path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got none (settings=%+v)", s)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.checkFunc != nil {
				tt.checkFunc(t, s)
			}
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	if _, err := loadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got none")
	}
}
