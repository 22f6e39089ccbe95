// Package writer provides a small text writer shared by the code
// generators for assembling output files.
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated source text. Fragments carry their own
// indentation, so the writer only handles file-level assembly.
type Writer struct {
	sb strings.Builder
}

// NewWriter creates a new code writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write appends a string
func (w *Writer) Write(s string) {
	w.sb.WriteString(s)
}

// Writef appends a formatted string
func (w *Writer) Writef(format string, args ...interface{}) {
	w.Write(fmt.Sprintf(format, args...))
}

// Newline appends a newline character
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
}

// BlankLine appends an empty line, never doubling one up and never
// opening the output with one
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.Newline()
	}
}

// WriteComment writes a single-line comment
func (w *Writer) WriteComment(comment string) {
	w.Writef("// %s", comment)
	w.Newline()
}

// String returns the generated code as a string
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated code as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}
