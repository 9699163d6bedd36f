package textutil

import (
	"fmt"
	"strings"
)

// Method selects the unit two texts are compared by.
type Method string

const (
	// MethodLines compares sets of trimmed lines.
	MethodLines Method = "lines"
	// MethodShingles compares sets of k-word shingles.
	MethodShingles Method = "shingles"
)

// Methods lists every supported method.
func Methods() []Method {
	return []Method{MethodLines, MethodShingles}
}

// ParseMethod converts a case-insensitive method name into a Method.
func ParseMethod(value string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(value))) {
	case MethodLines:
		return MethodLines, nil
	case MethodShingles:
		return MethodShingles, nil
	default:
		return "", fmt.Errorf("%w %q (want lines or shingles)", ErrUnknownMethod, value)
	}
}

// Score compares text1 and text2 with the given method, excluding template.
// An empty template excludes nothing. shingleLength is only consulted for
// MethodShingles.
func Score(method Method, text1, text2, template string, shingleLength int) (float64, error) {
	switch method {
	case MethodLines:
		return LineSimilarityExcluding(text1, text2, template), nil
	case MethodShingles:
		return ShingleSimilarity(text1, text2, template, shingleLength)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownMethod, string(method))
	}
}
