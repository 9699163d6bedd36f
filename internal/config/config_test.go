package config_test

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"overlap/internal/config"
	"overlap/internal/textutil"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("OVERLAP_TEMPLATE", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "overlap", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Similarity.Method != "shingles" {
		t.Fatalf("expected shingles by default, got %q", cfg.Similarity.Method)
	}
	if cfg.Method() != textutil.MethodShingles {
		t.Fatalf("unexpected Method(): %q", cfg.Method())
	}
	if cfg.Similarity.ShingleLength != 3 {
		t.Fatalf("expected shingle length 3, got %d", cfg.Similarity.ShingleLength)
	}
	if cfg.Similarity.Threshold != 0.6 {
		t.Fatalf("expected threshold 0.6, got %v", cfg.Similarity.Threshold)
	}
	if cfg.Similarity.Template != "" {
		t.Fatalf("expected no template, got %q", cfg.Similarity.Template)
	}
	if !slices.Equal(cfg.Corpus.Extensions, config.Default().Corpus.Extensions) {
		t.Fatalf("unexpected extensions: %v", cfg.Corpus.Extensions)
	}
	if !cfg.Corpus.Recursive {
		t.Fatal("expected recursive scans by default")
	}
	if cfg.Output.Format != "table" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "overlap.toml")

	type payload struct {
		Similarity struct {
			Method        string  `toml:"method"`
			ShingleLength int     `toml:"shingle_length"`
			Threshold     float64 `toml:"threshold"`
			Template      string  `toml:"template"`
		} `toml:"similarity"`
		Corpus struct {
			Extensions []string `toml:"extensions"`
		} `toml:"corpus"`
		Output struct {
			Format string `toml:"format"`
		} `toml:"output"`
	}
	custom := payload{}
	custom.Similarity.Method = " Lines "
	custom.Similarity.ShingleLength = 5
	custom.Similarity.Threshold = 0.9
	custom.Similarity.Template = filepath.Join(tempDir, "template.txt")
	custom.Corpus.Extensions = []string{"TXT", ".c", ".txt", " "}
	custom.Output.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Method() != textutil.MethodLines {
		t.Fatalf("expected lines method, got %q", cfg.Similarity.Method)
	}
	if cfg.Similarity.ShingleLength != 5 {
		t.Fatalf("expected shingle length 5, got %d", cfg.Similarity.ShingleLength)
	}
	if cfg.Similarity.Threshold != 0.9 {
		t.Fatalf("expected threshold 0.9, got %v", cfg.Similarity.Threshold)
	}
	if cfg.Similarity.Template != custom.Similarity.Template {
		t.Fatalf("unexpected template: %q", cfg.Similarity.Template)
	}
	if want := []string{".txt", ".c"}; !slices.Equal(cfg.Corpus.Extensions, want) {
		t.Fatalf("unexpected extensions: got %v want %v", cfg.Corpus.Extensions, want)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected json output, got %q", cfg.Output.Format)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "overlap.toml")
	if err := os.WriteFile(configPath, []byte("[similarity]\nshingle_lenght = 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestTemplateFallsBackToEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	templatePath := filepath.Join(t.TempDir(), "boilerplate.txt")
	t.Setenv("OVERLAP_TEMPLATE", templatePath)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Similarity.Template != templatePath {
		t.Fatalf("expected template from env, got %q", cfg.Similarity.Template)
	}
}

func TestTemplateExpandsTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "overlap.toml")
	if err := os.WriteFile(configPath, []byte("[similarity]\ntemplate = \"~/starter.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "starter.txt"); cfg.Similarity.Template != want {
		t.Fatalf("unexpected template: got %q want %q", cfg.Similarity.Template, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"defaults", func(*config.Config) {}, ""},
		{"unknown method", func(c *config.Config) { c.Similarity.Method = "words" }, "similarity.method"},
		{"zero shingle length", func(c *config.Config) { c.Similarity.ShingleLength = 0 }, "similarity.shingle_length"},
		{"negative threshold", func(c *config.Config) { c.Similarity.Threshold = -0.1 }, "similarity.threshold"},
		{"threshold above one", func(c *config.Config) { c.Similarity.Threshold = 1.5 }, "similarity.threshold"},
		{"nan threshold", func(c *config.Config) { c.Similarity.Threshold = math.NaN() }, "similarity.threshold"},
		{"zero max bytes", func(c *config.Config) { c.Corpus.MaxFileBytes = 0 }, "corpus.max_file_bytes"},
		{"bad output format", func(c *config.Config) { c.Output.Format = "xml" }, "output.format"},
		{"bad color", func(c *config.Config) { c.Output.Color = "sometimes" }, "output.color"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "logfmt" }, "logging.format"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("OVERLAP_TEMPLATE", "")
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load(sample) returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	def := config.Default()
	if cfg.Similarity != def.Similarity {
		t.Fatalf("sample similarity %+v differs from defaults %+v", cfg.Similarity, def.Similarity)
	}
	if cfg.Output != def.Output || cfg.Logging != def.Logging {
		t.Fatalf("sample output/logging differ from defaults: %+v %+v", cfg.Output, cfg.Logging)
	}
	if cfg.Corpus.MaxFileBytes != def.Corpus.MaxFileBytes {
		t.Fatalf("sample max_file_bytes %d differs from default %d", cfg.Corpus.MaxFileBytes, def.Corpus.MaxFileBytes)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/docs")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "docs"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestLoadRejectsNaNThreshold(t *testing.T) {
	t.Setenv("OVERLAP_TEMPLATE", "")
	path := filepath.Join(t.TempDir(), "overlap.toml")
	if err := os.WriteFile(path, []byte("[similarity]\nthreshold = nan\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "similarity.threshold") {
		t.Fatalf("expected threshold validation error, got %v", err)
	}
}
