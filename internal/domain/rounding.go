package domain

import (
	"fmt"
	"strings"
)

// Rounding selects how GradeToMinScoreWith turns the exact inverse into a score.
type Rounding int

const (
	// RoundHalfAwayFromZero rounds to the nearest score, .5 going up.
	RoundHalfAwayFromZero Rounding = iota
	// RoundUp takes the ceiling: the smallest score whose grade is not worse than the target.
	RoundUp
)

func (r Rounding) String() string {
	switch r {
	case RoundUp:
		return "up"
	default:
		return "nearest"
	}
}

// ParseRounding accepts "nearest" (default when empty) or "up".
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return RoundHalfAwayFromZero, nil
	case "up", "ceil":
		return RoundUp, nil
	default:
		return RoundHalfAwayFromZero, &OpError{
			Op:    "domain.parserounding",
			Kind:  KindInvalidConfig,
			Input: s,
			Err:   fmt.Errorf("%w: expected nearest|up", ErrInvalidConfig),
		}
	}
}
