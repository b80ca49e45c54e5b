package internal

import (
	"encoding/binary"
	"iter"
)

// Words iterates the big-endian 16-bit words in data, yielding the byte
// address of each word with its value. A trailing odd byte is not yielded.
func Words(data []byte) iter.Seq2[uint16, uint16] {
	return func(yield func(uint16, uint16) bool) {
		for addr := 0; addr+2 <= len(data); addr += 2 {
			if !yield(uint16(addr), binary.BigEndian.Uint16(data[addr:])) {
				return // Stop if the consumer stops
			}
		}
	}
}
