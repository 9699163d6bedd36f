package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"overlap/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config with color disabled so rendered output
// is stable, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Output.Color = "never"

	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMethod sets the similarity method on the test config.
func WithMethod(method string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Similarity.Method = method
	}
}

// WithShingleLength sets the shingle length on the test config.
func WithShingleLength(k int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Similarity.ShingleLength = k
	}
}

// WithThreshold sets the flag threshold on the test config.
func WithThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Similarity.Threshold = threshold
	}
}

// WithTemplate writes content to a template file under the test's temp
// directory and points the config at it.
func WithTemplate(content string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "template.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			b.t.Fatalf("write template: %v", err)
		}
		b.cfg.Similarity.Template = path
	}
}

// WithOutputFormat sets the output format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WriteConfigFile marshals cfg to a TOML file in a fresh temp directory and
// returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "overlap.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
