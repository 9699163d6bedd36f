package sets

// Union returns a new set holding every element present in s or t.
func Union[E comparable](s, t Set[E]) Set[E] {
	u := make(Set[E], len(s)+len(t))
	for e := range s {
		u[e] = struct{}{}
	}
	for e := range t {
		u[e] = struct{}{}
	}
	return u
}

// Intersection returns a new set holding every element present in both s and t.
func Intersection[E comparable](s, t Set[E]) Set[E] {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	i := make(Set[E])
	for e := range small {
		if large.Contains(e) {
			i[e] = struct{}{}
		}
	}
	return i
}

// Difference returns a new set holding the elements of s that are not in t (s \ t).
func Difference[E comparable](s, t Set[E]) Set[E] {
	d := make(Set[E], len(s))
	for e := range s {
		if !t.Contains(e) {
			d[e] = struct{}{}
		}
	}
	return d
}

// JaccardIndex returns |s ∩ t| / |s ∪ t|, or 1 when both sets are empty.
func JaccardIndex[E comparable](s, t Set[E]) float64 {
	if len(s) == 0 && len(t) == 0 {
		return 1
	}
	shared := len(Intersection(s, t))
	// |s ∪ t| = |s| + |t| - |s ∩ t|
	total := len(s) + len(t) - shared
	return float64(shared) / float64(total)
}
