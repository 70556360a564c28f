package ports

import (
	"io"

	"github.com/aalvaropc/ibnoten/internal/domain"
)

// TableExporter writes the conversion table in a named format.
type TableExporter interface {
	Encode(w io.Writer, rows []domain.TableRow, format string) error
	WriteFile(path string, rows []domain.TableRow, format string) error
}
