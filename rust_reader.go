package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadRustTable parses a generated Rust table literal back into a Table. It
// only inspects the bool tokens, so a renamed constant or reflowed literal
// still parses.
func ReadRustTable(reader io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)

	var table Table
	count := 0
	for scanner.Scan() {
		var bit bool
		switch strings.Trim(scanner.Text(), "[](),;") {
		case "true":
			bit = true
		case "false":
			bit = false
		default:
			continue
		}
		if count >= len(table)*8 {
			return nil, fmt.Errorf("table literal has more than %d bool entries", len(table)*8)
		}
		table[count/8][count%8] = bit
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read table literal: %s", err.Error())
	}
	if count != len(table)*8 {
		return nil, fmt.Errorf("table literal has %d bool entries, want %d", count, len(table)*8)
	}
	return &table, nil
}
