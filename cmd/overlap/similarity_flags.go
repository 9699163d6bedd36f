package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"overlap/internal/compare"
	"overlap/internal/config"
	"overlap/internal/corpus"
	"overlap/internal/textutil"
)

// similarityFlags holds the scoring flags shared by compare and scan.
type similarityFlags struct {
	method        string
	shingleLength int
	template      string
	threshold     float64
}

func (f *similarityFlags) register(cmd *cobra.Command) {
	methods := make([]string, 0, len(textutil.Methods()))
	for _, m := range textutil.Methods() {
		methods = append(methods, string(m))
	}
	cmd.Flags().StringVarP(&f.method, "method", "m", "", "Similarity method ("+strings.Join(methods, ", ")+")")
	cmd.Flags().IntVarP(&f.shingleLength, "shingle-length", "k", 0, "Words per shingle")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template file whose lines or shingles are ignored")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "Score at or above which a pair is flagged")
}

// options merges explicitly set flags over cfg and reads the template.
func (f *similarityFlags) options(cmd *cobra.Command, cfg *config.Config, loader *corpus.Loader) (compare.Options, error) {
	opts := compare.Options{
		Method:        cfg.Method(),
		ShingleLength: cfg.Similarity.ShingleLength,
		Threshold:     cfg.Similarity.Threshold,
		TemplateName:  cfg.Similarity.Template,
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		method, err := textutil.ParseMethod(f.method)
		if err != nil {
			return compare.Options{}, fmt.Errorf("--method: %w", err)
		}
		opts.Method = method
	}
	if flags.Changed("shingle-length") {
		opts.ShingleLength = f.shingleLength
	}
	if flags.Changed("threshold") {
		opts.Threshold = f.threshold
	}
	if flags.Changed("template") {
		path, err := config.ExpandPath(strings.TrimSpace(f.template))
		if err != nil {
			return compare.Options{}, fmt.Errorf("--template: %w", err)
		}
		opts.TemplateName = path
	}

	template, err := loader.ReadTemplate(opts.TemplateName)
	if err != nil {
		return compare.Options{}, fmt.Errorf("read template: %w", err)
	}
	opts.Template = template

	if err := opts.Validate(); err != nil {
		return compare.Options{}, err
	}
	return opts, nil
}
