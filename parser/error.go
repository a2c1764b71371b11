package parser

import "fmt"

// Error is the failure type returned by Parse: message names which
// grammar rule was violated, Offset is the 0-based byte position in
// the input where the problem was detected.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parser: %s (offset %d)", e.Message, e.Offset)
}
