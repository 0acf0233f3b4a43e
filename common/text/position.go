package text

import "fmt"

// Positioner represents a thing that knows its position in a text file or stream,
// typically an error.
type Positioner interface {
	Position() Position
}

// Position holds a source position in a text file or stream.
type Position struct {
	Filename     string // filename, if any
	LineNumber   int    // line number, starting at 1
	ColumnNumber int    // column number, starting at 1 (character count per line)
}

// IsValid returns true if line number is > 0.
func (pos Position) IsValid() bool {
	return pos.LineNumber > 0
}

func (pos Position) String() string {
	if pos.Filename == "" {
		pos.Filename = "<stream>"
	}
	if pos.ColumnNumber > 0 {
		return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.LineNumber, pos.ColumnNumber)
	}
	return fmt.Sprintf("%s:%d", pos.Filename, pos.LineNumber)
}

// PositionError is an error tied to a position in a source file.
type PositionError struct {
	Pos Position
	Err error
}

// NewPositionError wraps err with the position pos.
func NewPositionError(pos Position, err error) *PositionError {
	return &PositionError{Pos: pos, Err: err}
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

func (e *PositionError) Position() Position {
	return e.Pos
}
