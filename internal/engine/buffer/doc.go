// Package buffer provides the text buffer edited by quill.
//
// A Buffer owns a flat byte slice of text, an insertion index and a desired
// column. Lines are separated by '\n'. Every operation is total: offsets and
// ranges are clamped to the current content rather than rejected, so callers
// never need to handle index errors.
//
// The buffer package provides:
//
//   - Raw edits at the insertion index (Write, Delete)
//   - Lazy line iteration (Lines)
//   - Conversion between byte offsets and line/column points
//   - Cursor-aware editing helpers (WriteChar, DeletePrevChar, NextWord, ...)
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello")
//	buf.SetInsertionIndex(5)
//	buf.WriteChar('!')         // "hello!", index 6
//	buf.DeletePrevChar()       // "hello", index 5
//	p := buf.CursorPoint()     // (0:5)
//
// The buffer is not safe for concurrent use; the editor loop owns it.
package buffer
