package extractor

import (
	"math"
	"strings"
)

// calcDegree returns the angle of the vector from (x2,y2) to (x1,y1),
// normalized into [0,360) degrees. With y growing downward, the top edge
// of an upright token scores ~180.
func calcDegree(x1, y1, x2, y2 float64) float64 {
	degrees := math.Atan2(y1-y2, x1-x2) * 180 / math.Pi
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// locateLabel finds the token best fuzzy-matching the field keyword.
// It returns the anchor index, the keyword that actually matched, and
// whether any token came within tolerance.
//
// Keywords containing '/' are also tried with the slash replaced by a
// space, taking the smaller distance per token: printed cards carry both
// "RT/RW" and recognizers that split it into "RT RW".
//
// The kota field gets one bounded fallback: district headers read either
// "KABUPATEN ..." or "KOTA ...", so when "kabupaten" misses, "kota" is
// retried once with tolerance 1.
func (e *Extractor) locateLabel(tokens []Token, spec FieldSpec) (int, string, bool) {
	if len(tokens) == 0 {
		return 0, "", false
	}

	index, found := bestKeywordMatch(tokens, spec.Keyword, spec.Tolerance)
	keyword := spec.Keyword

	if !found && spec.Name == FieldKota && spec.Keyword != "kota" {
		keyword = "kota"
		index, found = bestKeywordMatch(tokens, keyword, 1)
	}
	if !found {
		return 0, "", false
	}
	return index, keyword, true
}

// bestKeywordMatch returns the index of the token with the minimum edit
// distance to keyword (first occurrence on ties) when that minimum is
// within tolerance.
func bestKeywordMatch(tokens []Token, keyword string, tolerance int) (int, bool) {
	distances := make([]int, len(tokens))
	for i, t := range tokens {
		distances[i] = Distance(keyword, strings.ToLower(t.Label))
	}

	if strings.Contains(keyword, "/") {
		alt := strings.ReplaceAll(keyword, "/", " ")
		for i, t := range tokens {
			if d := Distance(alt, strings.ToLower(t.Label)); d < distances[i] {
				distances[i] = d
			}
		}
	}

	best := 0
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[best] {
			best = i
		}
	}
	if distances[best] > tolerance {
		return 0, false
	}
	return best, true
}

// dropProvinceLeakage removes tokens whose lowercase label is exactly a
// province-name fragment ("jawa", "nusa"). Those fragments sit close
// enough to the name row on some cards to win the fuzzy match for "nama".
func dropProvinceLeakage(tokens []Token) []Token {
	filtered := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		switch strings.ToLower(t.Label) {
		case "jawa", "nusa":
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
