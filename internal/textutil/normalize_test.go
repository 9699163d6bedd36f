package textutil

import (
	"errors"
	"slices"
	"testing"

	"overlap/internal/sets"
)

func TestTrimmedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trims and drops blanks",
			input: "  a \n\n b \n",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only whitespace",
			input: " \n\t\n   ",
			want:  []string{},
		},
		{
			name:  "duplicates collapse",
			input: "x\n  x\nx  \ny",
			want:  []string{"x", "y"},
		},
		{
			name:  "crlf line endings",
			input: "first\r\nsecond\r\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "unicode spaces trimmed",
			input: "\u00a0line\u0085\n",
			want:  []string{"line"},
		},
		{
			name:  "control bytes kept",
			input: "\x01line\x01\n",
			want:  []string{"\x01line\x01"},
		},
		{
			name:  "inner whitespace kept",
			input: "int  x = 1;",
			want:  []string{"int  x = 1;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sets.Sorted(TrimmedLines(tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("TrimmedLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLowercaseWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation and numbers",
			input: "Hello, World! 123",
			want:  []string{"hello", "world", "123"},
		},
		{
			name:  "order and duplicates preserved",
			input: "b a b",
			want:  []string{"b", "a", "b"},
		},
		{
			name:  "leading separators",
			input: "  ...Go!",
			want:  []string{"go"},
		},
		{
			name:  "underscore is a word character",
			input: "snake_case value",
			want:  []string{"snake_case", "value"},
		},
		{
			name:  "mixed alphanumerics",
			input: "test123 456test",
			want:  []string{"test123", "456test"},
		},
		{
			name:  "non-ascii letters split words",
			input: "Café au lait",
			want:  []string{"caf", "au", "lait"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only separators",
			input: "!? -- ;",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LowercaseWords(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("LowercaseWords(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestShingle(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		k     int
		want  []string
	}{
		{
			name:  "pairs",
			words: []string{"a", "very", "fine"},
			k:     2,
			want:  []string{"avery", "veryfine"},
		},
		{
			name:  "too few words",
			words: []string{"a"},
			k:     2,
			want:  []string{},
		},
		{
			name:  "no words",
			words: nil,
			k:     1,
			want:  []string{},
		},
		{
			name:  "exact length",
			words: []string{"x", "y", "z"},
			k:     3,
			want:  []string{"xyz"},
		},
		{
			name:  "unigrams collapse duplicates",
			words: []string{"a", "b", "a"},
			k:     1,
			want:  []string{"a", "b"},
		},
		{
			name:  "triples",
			words: []string{"a", "very", "fine", "young", "man", "i", "know"},
			k:     3,
			want:  []string{"averyfine", "fineyoungman", "maniknow", "veryfineyoung", "youngmani"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shingle(tt.words, tt.k)
			if err != nil {
				t.Fatalf("Shingle returned error: %v", err)
			}
			if gotSorted := sets.Sorted(got); !slices.Equal(gotSorted, tt.want) {
				t.Errorf("Shingle(%q, %d) = %q, want %q", tt.words, tt.k, gotSorted, tt.want)
			}
		})
	}
}

func TestShingleRejectsNonPositiveLength(t *testing.T) {
	for _, k := range []int{0, -1, -10} {
		got, err := Shingle([]string{"a", "b"}, k)
		if !errors.Is(err, ErrInvalidShingleLength) {
			t.Errorf("Shingle(k=%d) error = %v, want ErrInvalidShingleLength", k, err)
		}
		if got != nil {
			t.Errorf("Shingle(k=%d) = %v, want nil set", k, got)
		}
	}
}

func TestShingleConcatenationIsAmbiguous(t *testing.T) {
	left, err := Shingle([]string{"a", "bc"}, 2)
	if err != nil {
		t.Fatalf("Shingle: %v", err)
	}
	right, err := Shingle([]string{"ab", "c"}, 2)
	if err != nil {
		t.Fatalf("Shingle: %v", err)
	}
	if !sets.Equal(left, right) {
		t.Errorf("expected both to produce {abc}, got %q and %q", sets.Sorted(left), sets.Sorted(right))
	}
}

func TestShingleDoesNotMutateWords(t *testing.T) {
	words := []string{"one", "two", "three"}
	if _, err := Shingle(words, 2); err != nil {
		t.Fatalf("Shingle: %v", err)
	}
	if !slices.Equal(words, []string{"one", "two", "three"}) {
		t.Errorf("words mutated: %q", words)
	}
}
