package tui

import "github.com/aalvaropc/ibnoten/internal/domain"

type scoreConvertedMsg struct {
	input string
	score domain.Score
	grade domain.Grade
	err   error
}

type gradeConvertedMsg struct {
	input string
	grade domain.Grade
	score domain.Score
	err   error
}
