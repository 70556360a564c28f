package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Score is an IB point total.
type Score int

// Grade is an average grade on the 1.0 (best) to 4.0 scale.
type Grade float64

const (
	MinScore Score = 24
	MaxScore Score = 45

	// PlateauScore is the lowest score that already earns BestGrade.
	// Every score from PlateauScore to MaxScore collapses to BestGrade.
	PlateauScore Score = 42

	// MaxBelowPlateau is the largest score on the linear part of the scale.
	MaxBelowPlateau Score = PlateauScore - 1

	BestGrade  Grade = 1.0
	WorstGrade Grade = 4.0
)

// pointsPerGrade is the slope of the linear part: 18 points span 3 grade steps.
var pointsPerGrade = decimal.NewFromInt(int64(PlateauScore - MinScore)).
	Div(decimal.NewFromFloat(float64(WorstGrade - BestGrade)))

// ScoreToGrade converts an IB score to its average grade.
//
// Scores on the plateau [42, 45] map to 1.0; scores in [24, 42) are linearly
// interpolated so that 42 maps to 1.0 and 24 maps to 4.0.
func ScoreToGrade(p Score) (Grade, error) {
	switch {
	case p >= PlateauScore && p <= MaxScore:
		return BestGrade, nil
	case p >= MinScore && p < PlateauScore:
		return 1.0 + 3.0*Grade(PlateauScore-p)/Grade(PlateauScore-MinScore), nil
	default:
		return 0, &OpError{
			Op:    "domain.scoretograde",
			Kind:  KindInvalidScore,
			Input: strconv.Itoa(int(p)),
			Err:   ErrInvalidScore,
		}
	}
}

// GradeToMinScore returns the minimum IB score needed for grade n, rounding
// half away from zero. See GradeToMinScoreWith.
func GradeToMinScore(n Grade) (Score, error) {
	return GradeToMinScoreWith(n, RoundHalfAwayFromZero)
}

// GradeToMinScoreWith inverts the linear part of ScoreToGrade:
//
//	P = 42 - (n - 1.0) * 6
//
// The arithmetic runs on the shortest decimal form of n so that values such as
// 1.5 land on 39 exactly instead of 38.99999. The result is clamped to [24, 41];
// n == 1.0 is answered with the plateau start 42.
//
// This is not a round-trip inverse of ScoreToGrade near the plateau.
func GradeToMinScoreWith(n Grade, r Rounding) (Score, error) {
	g := float64(n)
	if n == BestGrade {
		return PlateauScore, nil
	}
	if math.IsNaN(g) || n < BestGrade || n > WorstGrade {
		return 0, &OpError{
			Op:    "domain.gradetominscore",
			Kind:  KindInvalidGrade,
			Input: strconv.FormatFloat(g, 'f', -1, 64),
			Err:   ErrInvalidGrade,
		}
	}

	above := decimal.NewFromFloat(g).Sub(decimal.NewFromFloat(float64(BestGrade)))
	exact := decimal.NewFromInt(int64(PlateauScore)).Sub(above.Mul(pointsPerGrade))

	var rounded decimal.Decimal
	switch r {
	case RoundUp:
		rounded = exact.Ceil()
	default:
		// decimal.Round rounds half away from zero.
		rounded = exact.Round(0)
	}

	p := Score(rounded.IntPart())
	if p < MinScore {
		p = MinScore
	}
	if p > MaxBelowPlateau {
		p = MaxBelowPlateau
	}
	return p, nil
}
