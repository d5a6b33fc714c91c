package main

import (
	"bufio"
	"fmt"
	"io"
)

// WriteAsGo emits the table as a standalone gofmt-stable Go source file.
func (table *Table) WriteAsGo(writer io.Writer, packageName string, name string) error {
	goWriter := &goWriter{writer: bufio.NewWriter(writer), table: table, packageName: packageName, name: name}
	return goWriter.writeFile()
}

type goWriter struct {
	writer      *bufio.Writer
	table       *Table
	packageName string
	name        string
}

func (w *goWriter) writeFile() (err error) {
	if err = w.writeHeader(); err != nil {
		return
	}
	if err = w.writeRows(); err != nil {
		return
	}
	if err = w.writeFooter(); err != nil {
		return
	}
	return w.writer.Flush()
}

func (w *goWriter) writeHeader() (err error) {
	_, err = fmt.Fprintf(w.writer, "// Code generated by booltab. DO NOT EDIT.\n\npackage %s\n\nvar %s = [256][8]bool{\n", w.packageName, w.name)
	return
}

func (w *goWriter) writeRows() (err error) {
	for _, seq := range w.table {
		if _, err = w.writer.WriteString("\t{"); err != nil {
			return
		}
		for i, bit := range seq {
			if i > 0 {
				if _, err = w.writer.WriteString(", "); err != nil {
					return
				}
			}
			if _, err = fmt.Fprintf(w.writer, "%t", bit); err != nil {
				return
			}
		}
		if _, err = w.writer.WriteString("},\n"); err != nil {
			return
		}
	}
	return
}

func (w *goWriter) writeFooter() (err error) {
	_, err = w.writer.WriteString("}\n")
	return
}
