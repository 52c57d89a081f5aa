package extractor

// Distance returns the Levenshtein edit distance between a and b:
// the minimum number of single-character insertions, deletions and
// substitutions needed to turn one into the other. Inputs are compared
// as-is; callers lowercase beforehand when matching should ignore case.
func Distance(a, b string) int {
	source := []rune(a)
	target := []rune(b)

	if len(target) == 0 {
		return len(source)
	}
	if len(source) == 0 {
		return len(target)
	}

	previous := make([]int, len(target)+1)
	current := make([]int, len(target)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(source); i++ {
		current[0] = i
		for j := 1; j <= len(target); j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			current[j] = minInt(
				previous[j]+1,        // deletion
				current[j-1]+1,       // insertion
				previous[j-1]+cost,   // substitution
			)
		}
		previous, current = current, previous
	}

	return previous[len(target)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
