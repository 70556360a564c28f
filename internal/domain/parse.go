package domain

import (
	"strconv"
	"strings"
)

// ParseScore reads an integer score from the first token of a line of user
// input. Anything after the first token is ignored.
func ParseScore(line string) (Score, error) {
	tok := firstToken(line)
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &OpError{
			Op:    "domain.parsescore",
			Kind:  KindMalformedInput,
			Input: tok,
			Err:   ErrMalformedInput,
		}
	}
	return Score(v), nil
}

// ParseGrade reads a grade from the first token of a line of user input.
// A decimal comma ("2,5") is accepted.
func ParseGrade(line string) (Grade, error) {
	tok := strings.Replace(firstToken(line), ",", ".", 1)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &OpError{
			Op:    "domain.parsegrade",
			Kind:  KindMalformedInput,
			Input: tok,
			Err:   ErrMalformedInput,
		}
	}
	return Grade(v), nil
}

func firstToken(line string) string {
	f := strings.Fields(line)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
