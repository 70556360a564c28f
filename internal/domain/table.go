package domain

import "iter"

// TableRow is one line of the conversion table.
type TableRow struct {
	Score Score `json:"score" yaml:"score"`
	Grade Grade `json:"grade" yaml:"grade"`
}

// GenerateTable yields (score, grade) for every score from minScore through
// MaxScore in ascending order. The sequence is stateless and can be ranged
// over any number of times. A minScore below MinScore starts at MinScore.
func GenerateTable(minScore Score) iter.Seq2[Score, Grade] {
	start := max(minScore, MinScore)

	return func(yield func(Score, Grade) bool) {
		for p := start; p <= MaxScore; p++ {
			g, err := ScoreToGrade(p)
			if err != nil {
				return
			}
			if !yield(p, g) {
				return
			}
		}
	}
}

// Table collects GenerateTable(minScore) into rows.
func Table(minScore Score) []TableRow {
	var rows []TableRow
	for p, g := range GenerateTable(minScore) {
		rows = append(rows, TableRow{Score: p, Grade: g})
	}
	return rows
}
