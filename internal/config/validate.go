package config

import (
	"errors"
	"fmt"

	"overlap/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	if _, err := textutil.ParseMethod(c.Similarity.Method); err != nil {
		return fmt.Errorf("similarity.method: %w", err)
	}
	if c.Similarity.ShingleLength <= 0 {
		return errors.New("similarity.shingle_length must be positive")
	}
	// Written positively so NaN is rejected.
	if !(c.Similarity.Threshold >= 0 && c.Similarity.Threshold <= 1) {
		return errors.New("similarity.threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if c.Corpus.MaxFileBytes <= 0 {
		return errors.New("corpus.max_file_bytes must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
