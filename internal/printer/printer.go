// Package printer renders tree-shaped records as indented, bulleted text.
//
// A record type is described once by a Shape: a title, an optional primary
// identifier and a table of Field descriptors. A single generic traversal
// walks that table, so adding a new record type means adding a table, not a
// new print function.
//
// Output format:
//
//	*Client name: buyers/1/clients/2
//		-Display name: Acme
//		-Role: CLIENT_DEAL_VIEWER
//
// Each indentation level is one tab. Level 0 lines start with '*', deeper
// lines with '-'. Absent (nil) values are skipped unless the field carries a
// default.
package printer

import (
	"io"
	"strings"
)

// Shape describes how a record of type T is rendered.
type Shape[T any] struct {
	// Title labels the record's header line, e.g. "Deal name".
	Title string
	// ID returns the record's primary identifier. It is printed on the root
	// header line, and as the first field when the record is nested.
	ID func(*T) *string
	// Fields are rendered in order, one level below the header.
	Fields []Field[T]
}

// Prefix returns the indentation and bullet for a line at the given level.
func Prefix(level int) string {
	if level <= 0 {
		return "*"
	}
	return strings.Repeat("\t", level) + "-"
}

// Render writes rec as a root record: a header line carrying the primary
// identifier at level, followed by every field at level+1. A nil rec
// writes nothing.
func Render[T any](w io.Writer, shape *Shape[T], rec *T, level int) error {
	if rec == nil || shape == nil {
		return nil
	}
	level = clampLevel(level)
	sw := &sink{w: w}
	var id *string
	if shape.ID != nil {
		id = shape.ID(rec)
	}
	if id != nil {
		sw.line(level, shape.Title+": "+*id)
	} else {
		sw.line(level, shape.Title+":")
	}
	renderFields(sw, rec, level+1, shape.Fields)
	return sw.err
}

// RenderField writes rec as a labelled nested record: a "label:" header at
// level, then the record's identifier (if any) and fields at level+1. A nil
// rec writes nothing.
func RenderField[T any](w io.Writer, label string, shape *Shape[T], rec *T, level int) error {
	sw := &sink{w: w}
	renderNested(sw, label, shape, rec, clampLevel(level))
	return sw.err
}

// RenderFields writes the given fields of rec at level without any header
// line. A nil rec writes nothing.
func RenderFields[T any](w io.Writer, rec *T, level int, fields ...Field[T]) error {
	if rec == nil {
		return nil
	}
	sw := &sink{w: w}
	renderFields(sw, rec, clampLevel(level), fields)
	return sw.err
}

func renderNested[T any](sw *sink, label string, shape *Shape[T], rec *T, level int) {
	if rec == nil || shape == nil {
		return
	}
	sw.line(level, label+":")
	if shape.ID != nil {
		if id := shape.ID(rec); id != nil {
			sw.line(level+1, shape.Title+": "+*id)
		}
	}
	renderFields(sw, rec, level+1, shape.Fields)
}

func renderFields[T any](sw *sink, rec *T, level int, fields []Field[T]) {
	for _, f := range fields {
		if sw.err != nil {
			return
		}
		if f.render != nil {
			f.render(sw, rec, level)
		}
	}
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	return level
}

// sink remembers the first write error and drops everything after it.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) line(level int, text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, Prefix(level)+text+"\n")
}
