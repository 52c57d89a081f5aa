package extractor

import (
	"math"
	"strings"
)

// collectValues gathers the tokens that form a field's answer: tokens in
// the same text row as the anchor (vertical band) whose direction from
// the anchor's top-left corner matches the anchor's own edge angle
// (co-linearity under slight rotation). The anchor token itself points
// the opposite way and drops out of the angle filter.
//
// Tokens that are empty once spaces and colons are removed are noise and
// skipped. The blood-type sub-label fragments "gol." and "darah" sit
// inside several fields' rows on the printed layout and are stripped
// here so they never leak into unrelated values. Provider order is
// preserved.
func (e *Extractor) collectValues(tokens []Token, anchor Token) []Token {
	x, y := anchor.X1, anchor.Y1
	degree := calcDegree(anchor.X1, anchor.Y1, anchor.X2, anchor.Y2)

	values := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if math.Abs(y-t.Y1) >= e.cfg.RowBandPx {
			continue
		}
		if math.Abs(calcDegree(x, y, t.X1, t.Y1)-degree) >= e.cfg.AngleToleranceDeg {
			continue
		}
		stripped := strings.ReplaceAll(t.Label, " ", "")
		stripped = strings.ReplaceAll(stripped, ":", "")
		if stripped == "" {
			continue
		}
		values = append(values, t)
	}

	values, _ = removeClosest(values, "gol.", 1)
	values, _ = removeClosest(values, "darah", 1)
	return values
}

// removeClosest drops the single token whose lowercase label is the best
// fuzzy match for keyword, provided the match is within tolerance. The
// second return reports whether a token was removed.
func removeClosest(values []Token, keyword string, tolerance int) ([]Token, bool) {
	if len(values) == 0 {
		return values, false
	}
	best, bestDist := 0, Distance(keyword, strings.ToLower(values[0].Label))
	for i := 1; i < len(values); i++ {
		if d := Distance(keyword, strings.ToLower(values[i].Label)); d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > tolerance {
		return values, false
	}
	out := make([]Token, 0, len(values)-1)
	out = append(out, values[:best]...)
	out = append(out, values[best+1:]...)
	return out, true
}

// leftmost returns the value token with the smallest x1.
func leftmost(values []Token) (Token, bool) {
	if len(values) == 0 {
		return Token{}, false
	}
	best := values[0]
	for _, t := range values[1:] {
		if t.X1 < best.X1 {
			best = t
		}
	}
	return best, true
}
