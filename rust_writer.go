package main

import (
	"bufio"
	"io"
)

// WriteAsRust emits the table as a Rust const declaration, matching the
// layout of the generator that first produced it: one line, inner arrays
// separated by comma-space, a trailing comma before the closing bracket.
func (table *Table) WriteAsRust(writer io.Writer, name string) error {
	rustWriter := &rustWriter{writer: bufio.NewWriter(writer), table: table, name: name}
	return rustWriter.writeTable()
}

type rustWriter struct {
	writer *bufio.Writer
	table  *Table
	name   string
}

func (w *rustWriter) writeTable() (err error) {
	if err = w.writeHeader(); err != nil {
		return
	}
	if err = w.writeSequences(); err != nil {
		return
	}
	if err = w.writeFooter(); err != nil {
		return
	}
	return w.writer.Flush()
}

func (w *rustWriter) writeHeader() (err error) {
	_, err = w.writer.WriteString("const " + w.name + ": [[bool; 8]; 256] = [")
	return
}

func (w *rustWriter) writeSequences() (err error) {
	for n, seq := range w.table {
		if err = w.writeSequence(seq, n == len(w.table)-1); err != nil {
			return
		}
	}
	return
}

func (w *rustWriter) writeSequence(seq BitSequence, last bool) (err error) {
	if err = w.writer.WriteByte('['); err != nil {
		return
	}
	for i, bit := range seq {
		if i > 0 {
			if _, err = w.writer.WriteString(", "); err != nil {
				return
			}
		}
		if _, err = w.writer.WriteString(rustBool(bit)); err != nil {
			return
		}
	}
	if _, err = w.writer.WriteString("],"); err != nil {
		return
	}
	if !last {
		err = w.writer.WriteByte(' ')
	}
	return
}

func (w *rustWriter) writeFooter() (err error) {
	_, err = w.writer.WriteString("];\n")
	return
}

func rustBool(bit bool) string {
	if bit {
		return "true"
	}
	return "false"
}
