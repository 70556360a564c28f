package tui

import (
	"log/slog"

	"github.com/aalvaropc/ibnoten/internal/domain"
)

type Deps struct {
	Rounding domain.Rounding
	NoColor  bool

	Logger *slog.Logger
	Debug  bool
}
