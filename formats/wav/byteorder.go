// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

// Chunk tags are stored as 4 ASCII bytes in big-endian order; every numeric
// field of the container is little-endian. All header fields go through
// these helpers.

func putTag(b []byte, tag [4]byte) {
	copy(b[:4], tag[:])
}

func readTag(b []byte) [4]byte {
	return [4]byte(b[:4])
}

func putUint16LE(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

func putUint32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

func uint16LE(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func uint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
