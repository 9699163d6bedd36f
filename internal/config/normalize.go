package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSimilarity(); err != nil {
		return err
	}
	c.normalizeCorpus()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeSimilarity() error {
	c.Similarity.Method = strings.ToLower(strings.TrimSpace(c.Similarity.Method))
	if c.Similarity.Method == "" {
		c.Similarity.Method = defaultMethod
	}
	c.Similarity.Template = strings.TrimSpace(c.Similarity.Template)
	if c.Similarity.Template == "" {
		if value, ok := os.LookupEnv(templateEnvVar); ok {
			c.Similarity.Template = strings.TrimSpace(value)
		}
	}
	if c.Similarity.Template != "" {
		expanded, err := expandPath(c.Similarity.Template)
		if err != nil {
			return fmt.Errorf("similarity.template: %w", err)
		}
		c.Similarity.Template = expanded
	}
	return nil
}

func (c *Config) normalizeCorpus() {
	if len(c.Corpus.Extensions) == 0 {
		c.Corpus.Extensions = append([]string(nil), defaultExtensions...)
		return
	}
	exts := make([]string, 0, len(c.Corpus.Extensions))
	seen := make(map[string]struct{}, len(c.Corpus.Extensions))
	for _, ext := range c.Corpus.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultExtensions...)
	}
	c.Corpus.Extensions = exts
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
