package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"overlap/internal/compare"
	"overlap/internal/corpus"
	"overlap/internal/textutil"
)

type pairOutput struct {
	Left          string          `json:"left"`
	Right         string          `json:"right"`
	Method        textutil.Method `json:"method"`
	ShingleLength int             `json:"shingle_length,omitempty"`
	Template      string          `json:"template,omitempty"`
	Score         float64         `json:"score"`
	Threshold     float64         `json:"threshold"`
	Flagged       bool            `json:"flagged"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var flags similarityFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Score the similarity of two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			loader := ctx.loader(cfg)

			opts, err := flags.options(cmd, cfg, loader)
			if err != nil {
				return err
			}
			comparer, err := compare.New(opts, logger)
			if err != nil {
				return err
			}

			left, err := loadOne(loader, args[0])
			if err != nil {
				return err
			}
			right, err := loadOne(loader, args[1])
			if err != nil {
				return err
			}

			res, err := comparer.Pair(left, right)
			if err != nil {
				return err
			}

			if jsonOut || cfg.Output.Format == "json" {
				out := pairOutput{
					Left:      left.Path,
					Right:     right.Path,
					Method:    opts.Method,
					Template:  opts.TemplateName,
					Score:     res.Score,
					Threshold: opts.Threshold,
					Flagged:   res.Flagged,
				}
				if opts.Method == textutil.MethodShingles {
					out.ShingleLength = opts.ShingleLength
				}
				return writeJSON(cmd, out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Similarity (%s): %.4f\n", opts.Method, res.Score)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// loadOne reads a single explicit file argument.
func loadOne(loader *corpus.Loader, path string) (corpus.Document, error) {
	docs, err := loader.Load(path)
	if err != nil {
		return corpus.Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	if len(docs) != 1 {
		return corpus.Document{}, fmt.Errorf("load %s: expected a single file, found %d documents", path, len(docs))
	}
	return docs[0], nil
}
