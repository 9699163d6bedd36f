package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"overlap/internal/compare"
	"overlap/internal/config"
)

// ErrMatchesFound is returned by scan --fail-on-match when any pair is flagged.
var ErrMatchesFound = errors.New("similar documents found")

func newScanCommand(ctx *commandContext) *cobra.Command {
	var flags similarityFlags
	var jsonOut bool
	var onlyFlagged bool
	var failOnMatch bool

	cmd := &cobra.Command{
		Use:   "scan <path>...",
		Short: "Score every pair of documents found under the given paths",
		Long: "Scan loads every matching file under the given files and directories, " +
			"scores each unordered pair once, and lists pairs from most to least similar.",
		Args: cobra.MinimumNArgs(1),
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

			docs, err := loader.Load(args...)
			if err != nil {
				return fmt.Errorf("load corpus: %w", err)
			}
			report, err := comparer.All(docs)
			if err != nil {
				return err
			}

			flagged := report.Flagged()
			if onlyFlagged {
				report.Results = flagged
			}

			if jsonOut || cfg.Output.Format == "json" {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				renderReport(out, report, len(flagged), colorEnabled(cfg, out))
			}

			if failOnMatch && len(flagged) > 0 {
				return fmt.Errorf("%w: %d pair(s) at or above %.2f", ErrMatchesFound, len(flagged), report.Threshold)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&onlyFlagged, "only-flagged", false, "List only pairs at or above the threshold")
	cmd.Flags().BoolVar(&failOnMatch, "fail-on-match", false, "Exit non-zero when any pair is flagged")
	return cmd
}

func renderReport(w io.Writer, report *compare.Report, flaggedCount int, colorize bool) {
	for _, line := range renderSectionHeader(fmt.Sprintf("Similarity report (%s)", describeMethod(report)), colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%s%-*s %d\n", statusIndent, statusLabelWidth, "Documents:", len(report.Documents))
	if report.Template != "" {
		fmt.Fprintf(w, "%s%-*s %s\n", statusIndent, statusLabelWidth, "Template:", report.Template)
	}
	fmt.Fprintln(w)

	if len(report.Results) > 0 {
		headers := []string{"#", "Left", "Right", "Score", "Flagged"}
		aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft}
		rows := make([][]string, 0, len(report.Results))
		for i, res := range report.Results {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				res.Left,
				res.Right,
				strconv.FormatFloat(res.Score, 'f', 4, 64),
				yesNo(res.Flagged),
			})
		}
		fmt.Fprintln(w, renderTable(headers, rows, aligns))
		fmt.Fprintln(w)
	}

	kind := statusOK
	message := fmt.Sprintf("no pairs at or above %.2f", report.Threshold)
	if flaggedCount > 0 {
		kind = statusWarn
		message = fmt.Sprintf("%d pair(s) at or above %.2f", flaggedCount, report.Threshold)
	}
	fmt.Fprintln(w, renderStatusLine("Flagged", kind, message, colorize))
}

func describeMethod(report *compare.Report) string {
	if report.ShingleLength > 0 {
		return fmt.Sprintf("%s, k=%d", report.Method, report.ShingleLength)
	}
	return string(report.Method)
}

func colorEnabled(cfg *config.Config, w io.Writer) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(w)
	}
}
