package main

import "github.com/willf/bitset"

// BitSequence holds the binary digits of a single byte value,
// most significant bit first.
type BitSequence [8]bool

// Table maps every byte value 0-255 to its bit sequence.
type Table [256]BitSequence

func NewTable() *Table {
	var table Table
	for n := 0; n < len(table); n++ {
		table[n] = sequenceForByte(byte(n))
	}
	return &table
}

func sequenceForByte(value byte) (seq BitSequence) {
	bits := bitset.From([]uint64{uint64(value)})
	for i := range seq {
		seq[i] = bits.Test(uint(7 - i))
	}
	return
}

// BinaryString renders the sequence as eight zero-padded binary digits.
func (seq BitSequence) BinaryString() string {
	digits := make([]byte, len(seq))
	for i, bit := range seq {
		if bit {
			digits[i] = '1'
		} else {
			digits[i] = '0'
		}
	}
	return string(digits)
}

// PackedByte folds the sequence back into the byte value it was built from.
func (seq BitSequence) PackedByte() (value byte) {
	for i, bit := range seq {
		if bit {
			value |= 1 << uint(7-i)
		}
	}
	return
}
