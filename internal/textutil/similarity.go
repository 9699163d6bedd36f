package textutil

import "overlap/internal/sets"

// LineSimilarity returns the Jaccard index of the trimmed line sets of text1
// and text2.
func LineSimilarity(text1, text2 string) float64 {
	return sets.JaccardIndex(TrimmedLines(text1), TrimmedLines(text2))
}

// LineSimilarityExcluding returns the line similarity of text1 and text2 after
// removing every trimmed line that also appears in template. Lines are trimmed
// before the template is subtracted, so only exact trimmed matches are dropped.
func LineSimilarityExcluding(text1, text2, template string) float64 {
	ignore := TrimmedLines(template)
	lines1 := sets.Difference(TrimmedLines(text1), ignore)
	lines2 := sets.Difference(TrimmedLines(text2), ignore)
	return sets.JaccardIndex(lines1, lines2)
}

// ShingleSimilarity returns the Jaccard index of the k-shingle sets of text1
// and text2, less the k-shingles of template. Each text is split into words
// and shingled independently before the template is subtracted.
func ShingleSimilarity(text1, text2, template string, k int) (float64, error) {
	ignore, err := Shingle(LowercaseWords(template), k)
	if err != nil {
		return 0, err
	}
	shingles1, err := Shingle(LowercaseWords(text1), k)
	if err != nil {
		return 0, err
	}
	shingles2, err := Shingle(LowercaseWords(text2), k)
	if err != nil {
		return 0, err
	}
	return sets.JaccardIndex(
		sets.Difference(shingles1, ignore),
		sets.Difference(shingles2, ignore),
	), nil
}
