package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/fixmap/fixture"
)

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fixmap.yml")

	yamlContent := `
logging:
  level: debug
  format: json
mappings:
  regions:
    eu: eu-central-1
    us: us-east-1
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(LoaderConfig{ConfigFile: configPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format 'json', got %q", cfg.Logging.Format)
	}
	if cfg.Mappings["regions"]["eu"] != "eu-central-1" {
		t.Errorf("expected mapping value, got %v", cfg.Mappings["regions"]["eu"])
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(LoaderConfig{ConfigFile: "/nonexistent/fixmap.yml"})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected 'not found' in error, got %q", err.Error())
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(LoaderConfig{FileSystem: &fakeFS{}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOnly(t *testing.T) {
	os.Setenv("FIXMAP_LOGGING_LEVEL", "debug")
	defer os.Unsetenv("FIXMAP_LOGGING_LEVEL")

	cfg, err := Load(LoaderConfig{FileSystem: &fakeFS{}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env-only level 'debug', got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fixmap.yml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	os.Setenv("FIXMAP_LOGGING_LEVEL", "debug")
	defer os.Unsetenv("FIXMAP_LOGGING_LEVEL")

	cfg, err := Load(LoaderConfig{ConfigFile: configPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env to override file, got %q", cfg.Logging.Level)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("LOGGING_NO_COLOR")
	want := map[string]bool{"logging_no_color": false, "logging.no_color": false}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("expected variant %q in %v", key, variants)
		}
	}
}

func TestLoadInvalidLogging(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fixmap.yml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: verbose\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(LoaderConfig{ConfigFile: configPath})
	if err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("FIXMAP_SUITE=integration\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	defer os.Unsetenv("FIXMAP_SUITE")

	if _, err := Load(LoaderConfig{EnvFile: envPath, FileSystem: &realExists{}}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if os.Getenv("FIXMAP_SUITE") != "integration" {
		t.Error("expected env file to be loaded")
	}
}

func TestRegisterMappings(t *testing.T) {
	cfg := &Config{
		Mappings: map[string]map[string]any{
			"regions": {"eu": "eu-central-1", "us": "us-east-1"},
		},
	}

	reg := fixture.NewRegistry()
	if err := RegisterMappings(reg, cfg); err != nil {
		t.Fatalf("RegisterMappings failed: %v", err)
	}

	def, err := fixture.Lookup[string](reg, "regions")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	lookup, err := def.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if v, _ := lookup.Get("us"); v != "us-east-1" {
		t.Errorf("expected 'us-east-1', got %v", v)
	}
}

func TestRegisterMappingsDuplicate(t *testing.T) {
	cfg := &Config{Mappings: map[string]map[string]any{"dup": {"a": 1}}}

	reg := fixture.NewRegistry()
	if err := RegisterMappings(reg, cfg); err != nil {
		t.Fatalf("first RegisterMappings failed: %v", err)
	}
	if err := RegisterMappings(reg, cfg); err == nil {
		t.Error("expected error registering the same mapping twice")
	}
}

// fakeFS reports nothing as existing, forcing pure defaults.
type fakeFS struct{}

func (f *fakeFS) Exists(string) bool   { return false }
func (f *fakeFS) LoadEnv(string) error { return nil }

// realExists delegates to the real filesystem.
type realExists struct{ RealFileSystem }
