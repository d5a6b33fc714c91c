package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadRustTableRoundTrip(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	if err := table.WriteAsRust(&buf, "U8_TO_ARRAY_BOOL"); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRustTable(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(table, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRustTableRenamedConstant(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	if err := table.WriteAsRust(&buf, "SOME_OTHER_NAME"); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRustTable(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(table, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRustTableTruncated(t *testing.T) {
	_, err := ReadRustTable(strings.NewReader("const X: [[bool; 8]; 256] = [[false, true],];"))
	if err == nil {
		t.Fatal("expected an error for a truncated literal")
	}
}

func TestReadRustTableOverlong(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTable().WriteAsRust(&buf, "U8_TO_ARRAY_BOOL"); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(" [true, true]")

	if _, err := ReadRustTable(&buf); err == nil {
		t.Fatal("expected an error for extra entries")
	}
}
