package compare

import (
	"errors"
	"fmt"

	"overlap/internal/textutil"
)

// ErrInvalidOptions wraps every Options validation failure.
var ErrInvalidOptions = errors.New("invalid compare options")

// Options configures a Comparer.
type Options struct {
	Method        textutil.Method
	ShingleLength int
	Threshold     float64
	// Template is the text whose lines or shingles are ignored when scoring.
	Template string
	// TemplateName identifies the template in reports, usually its path.
	TemplateName string
}

// Validate reports whether the options can drive a comparison.
func (o Options) Validate() error {
	switch o.Method {
	case textutil.MethodLines, textutil.MethodShingles:
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidOptions, textutil.ErrUnknownMethod, o.Method)
	}
	if o.Method == textutil.MethodShingles && o.ShingleLength <= 0 {
		return fmt.Errorf("%w: shingle length must be positive, got %d", ErrInvalidOptions, o.ShingleLength)
	}
	// Written positively so NaN is rejected.
	if !(o.Threshold >= 0 && o.Threshold <= 1) {
		return fmt.Errorf("%w: threshold must be within [0,1], got %v", ErrInvalidOptions, o.Threshold)
	}
	return nil
}
