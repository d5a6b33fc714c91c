package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteAsGoShape(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTable().WriteAsGo(&buf, "tables", "u8ToArrayBool"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	wantHeader := "// Code generated by booltab. DO NOT EDIT.\n\npackage tables\n\nvar u8ToArrayBool = [256][8]bool{\n"
	if !strings.HasPrefix(out, wantHeader) {
		t.Errorf("output header:\n%s", out[:len(wantHeader)])
	}

	if got := strings.Count(out, "\t{"); got != 256 {
		t.Errorf("output has %d rows, want 256", got)
	}

	wantFirst := "\t{false, false, false, false, false, false, false, false},\n"
	if !strings.Contains(out, wantFirst) {
		t.Error("output is missing the row for byte 0")
	}
	wantSuffix := "\t{true, true, true, true, true, true, true, true},\n}\n"
	if !strings.HasSuffix(out, wantSuffix) {
		t.Errorf("output ends with %q", out[len(out)-len(wantSuffix):])
	}
}
