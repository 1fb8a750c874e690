package ioutils

import (
	"fmt"
	"strings"
)

const dumpRowLen = 16

// HexDump renders b as rows of 16 bytes:
//
//	0000: 54 41 47 53 6F 6E 67 00 00 00 00 00 00 00 00 00  | TAGSong.........
//
// The offset is four upper-case hex digits, the hex column is padded to 48
// characters and the ASCII gutter shows bytes 32..126 as themselves and
// everything else as '.'. Rows are separated by '\n' with no trailing
// newline. An empty slice renders as "".
func HexDump(b []byte) string {
	rows := make([]string, 0, (len(b)+dumpRowLen-1)/dumpRowLen)

	for off := 0; off < len(b); off += dumpRowLen {
		end := min(off+dumpRowLen, len(b))
		chunk := b[off:end]

		var hex, ascii strings.Builder
		for _, c := range chunk {
			fmt.Fprintf(&hex, "%02X ", c)
			if c >= 32 && c <= 126 {
				ascii.WriteByte(c)
			} else {
				ascii.WriteByte('.')
			}
		}

		rows = append(rows, fmt.Sprintf("%04X: %-48s | %s", off, hex.String(), ascii.String()))
	}

	return strings.Join(rows, "\n")
}
