package ports

import "context"

// CellRef is a 1-based row/column position
type CellRef struct {
	Row int
	Col int
}

// Range is a rectangular block of cells starting at Origin
type Range struct {
	Origin CellRef
	Rows   int
	Cols   int
}

// CellStyle describes the formatting applied to a range
type CellStyle struct {
	Bold       bool
	Background string
}

// Grid is the spreadsheet surface a report is written to
type Grid interface {
	ActiveCell(ctx context.Context) (CellRef, error)
	// ClearRange erases content, formatting and merges inside r
	ClearRange(ctx context.Context, r Range) error
	SetValues(ctx context.Context, origin CellRef, rows [][]any) error
	SetValue(ctx context.Context, cell CellRef, value any) error
	Merge(ctx context.Context, r Range) error
	Format(ctx context.Context, r Range, style CellStyle) error
	AutoResizeColumns(ctx context.Context, startCol, count int) error
	// Flush persists pending writes
	Flush(ctx context.Context) error
}
