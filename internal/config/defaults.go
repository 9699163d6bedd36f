package config

const (
	defaultConfigPath    = "~/.config/overlap/config.toml"
	defaultProjectConfig = "overlap.toml"
	defaultMethod        = "shingles"
	defaultShingleLength = 3
	defaultThreshold     = 0.6
	defaultRecursive     = true
	defaultMaxFileBytes  = 4 << 20
	defaultOutputFormat  = "table"
	defaultOutputColor   = "auto"
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
	templateEnvVar       = "OVERLAP_TEMPLATE"
)

var defaultExtensions = []string{".txt", ".md", ".java", ".go", ".py"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Similarity: Similarity{
			Method:        defaultMethod,
			ShingleLength: defaultShingleLength,
			Threshold:     defaultThreshold,
		},
		Corpus: Corpus{
			Extensions:   append([]string(nil), defaultExtensions...),
			Recursive:    defaultRecursive,
			MaxFileBytes: defaultMaxFileBytes,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
