package compare

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"overlap/internal/corpus"
	"overlap/internal/logging"
	"overlap/internal/textutil"
)

// ErrTooFewDocuments is returned by All when fewer than two documents are supplied.
var ErrTooFewDocuments = errors.New("at least two documents are required")

// Result is the score of one document pair.
type Result struct {
	Left    string  `json:"left"`
	Right   string  `json:"right"`
	Score   float64 `json:"score"`
	Flagged bool    `json:"flagged"`
}

// Report summarizes a full corpus comparison.
type Report struct {
	RunID         string            `json:"run_id"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Method        textutil.Method   `json:"method"`
	ShingleLength int               `json:"shingle_length,omitempty"`
	Threshold     float64           `json:"threshold"`
	Template      string            `json:"template,omitempty"`
	Documents     []corpus.Document `json:"documents"`
	Results       []Result          `json:"results"`
}

// Flagged returns the results at or above the report threshold, in report order.
func (r *Report) Flagged() []Result {
	if r == nil {
		return nil
	}
	var out []Result
	for _, res := range r.Results {
		if res.Flagged {
			out = append(out, res)
		}
	}
	return out
}

// Comparer scores documents with a fixed set of options.
type Comparer struct {
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// New validates opts and returns a Comparer. A nil logger discards output.
func New(opts Options, logger *slog.Logger) (*Comparer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Comparer{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "compare"),
		now:    time.Now,
	}, nil
}

// Pair scores a against b.
func (c *Comparer) Pair(a, b corpus.Document) (Result, error) {
	score, err := textutil.Score(c.opts.Method, a.Text, b.Text, c.opts.Template, c.opts.ShingleLength)
	if err != nil {
		return Result{}, fmt.Errorf("score %s against %s: %w", a.Name, b.Name, err)
	}
	res := Result{
		Left:    a.Name,
		Right:   b.Name,
		Score:   score,
		Flagged: score >= c.opts.Threshold,
	}
	c.logger.Debug("pair scored",
		logging.String("left", res.Left),
		logging.String("right", res.Right),
		logging.Float64("score", res.Score),
		logging.Bool("flagged", res.Flagged),
	)
	return res, nil
}

// All scores every unordered pair of docs once.
func (c *Comparer) All(docs []corpus.Document) (*Report, error) {
	if len(docs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewDocuments, len(docs))
	}

	start := c.now()
	results := make([]Result, 0, len(docs)*(len(docs)-1)/2)
	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			res, err := c.Pair(docs[i], docs[j])
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}
	slices.SortStableFunc(results, compareResults)

	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: start.UTC(),
		Method:      c.opts.Method,
		Threshold:   c.opts.Threshold,
		Template:    c.opts.TemplateName,
		Documents:   slices.Clone(docs),
		Results:     results,
	}
	if c.opts.Method == textutil.MethodShingles {
		report.ShingleLength = c.opts.ShingleLength
	}

	c.logger.Info("corpus compared",
		logging.String("run_id", report.RunID),
		logging.String("method", string(report.Method)),
		logging.Int("documents", len(docs)),
		logging.Int("pairs", len(results)),
		logging.Int("flagged", len(report.Flagged())),
		logging.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}

func compareResults(a, b Result) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	if c := strings.Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return strings.Compare(a.Right, b.Right)
}
