package engine

import (
	"fmt"
	"strings"
)

// ParseError is the structured diagnostic for an expression that failed to
// parse. Offset is a byte offset into Expression pointing at the token (or
// character) the parser rejected.
type ParseError struct {
	Expression string
	Offset     int
	Message    string
}

func (e *ParseError) Error() string {
	_, col := e.position()
	return fmt.Sprintf("column %d: %s", col, e.Message)
}

// position returns the 1-based line and column of Offset. Columns count
// runes, not bytes.
func (e *ParseError) position() (line, col int) {
	line, col = 1, 1
	for i, r := range e.Expression {
		if i >= e.Offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Render formats the diagnostic as the offending source line followed by a
// caret marking the rejected position:
//
//	  24/77
//	     ^ expected "7" after "24/"
func (e *ParseError) Render() string {
	line, col := e.position()
	src := e.Expression
	for l := 1; l < line; l++ {
		if i := strings.IndexByte(src, '\n'); i >= 0 {
			src = src[i+1:]
		}
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		src = src[:i]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", src)
	fmt.Fprintf(&b, "  %s^ %s", strings.Repeat(" ", col-1), e.Message)
	return b.String()
}

func errAt(expr string, offset int, format string, args ...any) *ParseError {
	return &ParseError{Expression: expr, Offset: offset, Message: fmt.Sprintf(format, args...)}
}
