// Package sheet implements the Grid port on top of an xlsx workbook
package sheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

const (
	minColumnWidth = 8.0
	maxColumnWidth = 60.0
)

// WorkbookGrid writes report cells into one sheet of an xlsx file
type WorkbookGrid struct {
	mu     sync.Mutex
	file   *excelize.File
	path   string
	sheet  string
	active ports.CellRef
	styles map[ports.CellStyle]int
	logger ports.Logger
}

// WorkbookGridParams holds parameters for opening the workbook grid
type WorkbookGridParams struct {
	Path       string
	SheetName  string
	AnchorCell string
	Logger     ports.Logger
}

// NewWorkbookGrid opens Path when it exists, otherwise starts a new workbook
func NewWorkbookGrid(params WorkbookGridParams) (*WorkbookGrid, error) {
	if params.Path == "" {
		return nil, errors.NewValidationError("workbook path is required")
	}
	if params.SheetName == "" {
		return nil, errors.NewValidationError("sheet name is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	anchor, err := ParseCell(params.AnchorCell)
	if err != nil {
		return nil, err
	}

	file, created, err := openOrCreate(params.Path)
	if err != nil {
		return nil, err
	}
	if created {
		if err := file.SetSheetName(file.GetSheetName(0), params.SheetName); err != nil {
			return nil, errors.NewGridError("failed to name sheet", err)
		}
	}

	idx, err := file.GetSheetIndex(params.SheetName)
	if err != nil {
		return nil, errors.NewGridError("failed to look up sheet", err)
	}
	if idx < 0 {
		if idx, err = file.NewSheet(params.SheetName); err != nil {
			return nil, errors.NewGridError("failed to create sheet", err)
		}
	}
	file.SetActiveSheet(idx)

	return &WorkbookGrid{
		file:   file,
		path:   params.Path,
		sheet:  params.SheetName,
		active: anchor,
		styles: make(map[ports.CellStyle]int),
		logger: params.Logger,
	}, nil
}

func openOrCreate(path string) (*excelize.File, bool, error) {
	if _, err := os.Stat(path); err == nil {
		file, err := excelize.OpenFile(path)
		if err != nil {
			return nil, false, errors.NewGridError("failed to open workbook", err)
		}
		return file, false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, errors.NewGridError("failed to stat workbook", err)
	}
	return excelize.NewFile(), true, nil
}

// ParseCell converts an A1-style reference into a CellRef
func ParseCell(name string) (ports.CellRef, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.TrimSpace(name))
	if err != nil {
		return ports.CellRef{}, errors.NewValidationError(fmt.Sprintf("invalid cell reference %q", name))
	}
	return ports.CellRef{Row: row, Col: col}, nil
}

// CellName renders ref in A1 notation
func CellName(ref ports.CellRef) string {
	name, err := excelize.CoordinatesToCellName(ref.Col, ref.Row)
	if err != nil {
		return ""
	}
	return name
}

// Path returns the workbook file location
func (g *WorkbookGrid) Path() string {
	return g.path
}

// SetActiveCell moves the cursor the next report is anchored at
func (g *WorkbookGrid) SetActiveCell(ref ports.CellRef) error {
	if ref.Row < 1 || ref.Col < 1 {
		return errors.NewValidationError("active cell must be inside the sheet")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = ref
	return nil
}

func (g *WorkbookGrid) ActiveCell(_ context.Context) (ports.CellRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active, nil
}

func (g *WorkbookGrid) ClearRange(_ context.Context, r ports.Range) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.unmergeWithin(r); err != nil {
		return err
	}

	for row := r.Origin.Row; row < r.Origin.Row+r.Rows; row++ {
		for col := r.Origin.Col; col < r.Origin.Col+r.Cols; col++ {
			cell := CellName(ports.CellRef{Row: row, Col: col})
			if err := g.file.SetCellValue(g.sheet, cell, nil); err != nil {
				return errors.NewGridError("failed to clear cell "+cell, err)
			}
		}
	}

	first, last := corners(r)
	if err := g.file.SetCellStyle(g.sheet, first, last, 0); err != nil {
		return errors.NewGridError("failed to reset cell formatting", err)
	}
	return nil
}

func (g *WorkbookGrid) unmergeWithin(r ports.Range) error {
	merged, err := g.file.GetMergeCells(g.sheet)
	if err != nil {
		return errors.NewGridError("failed to read merged cells", err)
	}
	for _, mc := range merged {
		start, err := ParseCell(mc.GetStartAxis())
		if err != nil {
			continue
		}
		end, err := ParseCell(mc.GetEndAxis())
		if err != nil {
			continue
		}
		if !overlaps(r, start, end) {
			continue
		}
		if err := g.file.UnmergeCell(g.sheet, mc.GetStartAxis(), mc.GetEndAxis()); err != nil {
			return errors.NewGridError("failed to unmerge cells", err)
		}
	}
	return nil
}

func (g *WorkbookGrid) SetValues(_ context.Context, origin ports.CellRef, rows [][]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, row := range rows {
		cell := CellName(ports.CellRef{Row: origin.Row + i, Col: origin.Col})
		values := row
		if err := g.file.SetSheetRow(g.sheet, cell, &values); err != nil {
			return errors.NewGridError("failed to write row at "+cell, err)
		}
	}
	return nil
}

func (g *WorkbookGrid) SetValue(_ context.Context, ref ports.CellRef, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cell := CellName(ref)
	if err := g.file.SetCellValue(g.sheet, cell, value); err != nil {
		return errors.NewGridError("failed to write cell "+cell, err)
	}
	return nil
}

func (g *WorkbookGrid) Merge(_ context.Context, r ports.Range) error {
	if r.Rows*r.Cols <= 1 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	first, last := corners(r)
	if err := g.file.MergeCell(g.sheet, first, last); err != nil {
		return errors.NewGridError("failed to merge "+first+":"+last, err)
	}
	return nil
}

func (g *WorkbookGrid) Format(_ context.Context, r ports.Range, style ports.CellStyle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.styleID(style)
	if err != nil {
		return err
	}

	first, last := corners(r)
	if err := g.file.SetCellStyle(g.sheet, first, last, id); err != nil {
		return errors.NewGridError("failed to format "+first+":"+last, err)
	}
	return nil
}

func (g *WorkbookGrid) styleID(style ports.CellStyle) (int, error) {
	if id, ok := g.styles[style]; ok {
		return id, nil
	}

	def := &excelize.Style{Font: &excelize.Font{Bold: style.Bold}}
	if style.Background != "" {
		def.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{style.Background}}
	}

	id, err := g.file.NewStyle(def)
	if err != nil {
		return 0, errors.NewGridError("failed to create cell style", err)
	}
	g.styles[style] = id
	return id, nil
}

// AutoResizeColumns sizes each column to its longest unmerged value
func (g *WorkbookGrid) AutoResizeColumns(_ context.Context, startCol, count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows, err := g.file.GetRows(g.sheet)
	if err != nil {
		return errors.NewGridError("failed to read sheet rows", err)
	}
	merged, err := g.file.GetMergeCells(g.sheet)
	if err != nil {
		return errors.NewGridError("failed to read merged cells", err)
	}

	for col := startCol; col < startCol+count; col++ {
		longest := 0
		for r, row := range rows {
			if col-1 >= len(row) || inMerge(merged, ports.CellRef{Row: r + 1, Col: col}) {
				continue
			}
			if n := utf8.RuneCountInString(row[col-1]); n > longest {
				longest = n
			}
		}

		width := float64(longest) + 2
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return errors.NewGridError("invalid column number", err)
		}
		if err := g.file.SetColWidth(g.sheet, name, name, width); err != nil {
			return errors.NewGridError("failed to set width of column "+name, err)
		}
	}
	return nil
}

// Flush saves the workbook to its path
func (g *WorkbookGrid) Flush(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if dir := filepath.Dir(g.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewGridError("failed to create workbook directory", err)
		}
	}
	if err := g.file.SaveAs(g.path); err != nil {
		return errors.NewGridError("failed to save workbook", err)
	}

	g.logger.Debug("Workbook saved", ports.F("path", g.path))
	return nil
}

// WriteTo streams the current workbook contents to w
func (g *WorkbookGrid) WriteTo(w io.Writer) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, err := g.file.WriteTo(w)
	if err != nil {
		return n, errors.NewGridError("failed to write workbook", err)
	}
	return n, nil
}

func (g *WorkbookGrid) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.file.Close()
}

func corners(r ports.Range) (string, string) {
	first := CellName(r.Origin)
	last := CellName(ports.CellRef{Row: r.Origin.Row + r.Rows - 1, Col: r.Origin.Col + r.Cols - 1})
	return first, last
}

func overlaps(r ports.Range, start, end ports.CellRef) bool {
	return start.Row < r.Origin.Row+r.Rows && end.Row >= r.Origin.Row &&
		start.Col < r.Origin.Col+r.Cols && end.Col >= r.Origin.Col
}

func inMerge(merged []excelize.MergeCell, ref ports.CellRef) bool {
	for _, mc := range merged {
		start, err := ParseCell(mc.GetStartAxis())
		if err != nil {
			continue
		}
		end, err := ParseCell(mc.GetEndAxis())
		if err != nil {
			continue
		}
		if ref.Row >= start.Row && ref.Row <= end.Row && ref.Col >= start.Col && ref.Col <= end.Col {
			return true
		}
	}
	return false
}

var _ ports.Grid = (*WorkbookGrid)(nil)
