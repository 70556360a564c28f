package tableexport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/ibnoten/internal/domain"
	"github.com/aalvaropc/ibnoten/internal/ports"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
)

const sheetName = "Conversion"

// Exporter encodes the conversion table for machines and spreadsheets.
type Exporter struct {
	display func(domain.Grade) string
}

type Option func(*Exporter)

// WithDisplay sets how the human-readable grade column is formatted.
func WithDisplay(fn func(domain.Grade) string) Option {
	return func(e *Exporter) {
		if fn != nil {
			e.display = fn
		}
	}
}

func New(opts ...Option) *Exporter {
	e := &Exporter{
		display: func(g domain.Grade) string { return fmt.Sprintf("%.2g", float64(g)) },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.TableExporter = (*Exporter)(nil)

type row struct {
	Score   int     `json:"score" yaml:"score"`
	Grade   float64 `json:"grade" yaml:"grade"`
	Display string  `json:"display" yaml:"display"`
}

type document struct {
	Rows []row `json:"rows" yaml:"rows"`
}

func (e *Exporter) document(rows []domain.TableRow) document {
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row{Score: int(r.Score), Grade: float64(r.Grade), Display: e.display(r.Grade)})
	}
	return document{Rows: out}
}

func (e *Exporter) Encode(w io.Writer, rows []domain.TableRow, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapIO("tableexport.json", enc.Encode(e.document(rows)))

	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e.document(rows)); err != nil {
			return wrapIO("tableexport.yaml", err)
		}
		return wrapIO("tableexport.yaml", enc.Close())

	case FormatXLSX:
		return wrapIO("tableexport.xlsx", e.writeXLSX(w, rows))

	default:
		return &domain.OpError{
			Op:    "tableexport.encode",
			Kind:  domain.KindInvalidConfig,
			Input: format,
			Err:   fmt.Errorf("%w: unsupported format (expected json|yaml|xlsx)", domain.ErrInvalidConfig),
		}
	}
}

func (e *Exporter) writeXLSX(w io.Writer, rows []domain.TableRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headers := []string{"Score", "Grade", "Display"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, r := range rows {
		line := i + 2
		values := []any{int(r.Score), float64(r.Grade), e.display(r.Grade)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, line)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// WriteFile encodes rows and writes them to path through a temp file and rename.
// An empty format is inferred from the file extension.
func (e *Exporter) WriteFile(path string, rows []domain.TableRow, format string) error {
	if strings.TrimSpace(format) == "" {
		format = FormatFromPath(path)
	}

	var buf bytes.Buffer
	if err := e.Encode(&buf, rows, format); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{Op: "tableexport.mkdir", Kind: domain.KindIO, Input: dir, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &domain.OpError{Op: "tableexport.write", Kind: domain.KindIO, Input: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "tableexport.rename", Kind: domain.KindIO, Input: path, Err: err}
	}
	return nil
}

// FormatFromPath maps a file extension to an export format, or "".
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".xlsx":
		return FormatXLSX
	default:
		return ""
	}
}

func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return &domain.OpError{Op: op, Kind: domain.KindIO, Err: err}
}
