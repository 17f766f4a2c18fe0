package dmbc

import "encoding/binary"

// appendU8 appends an 8-bit value.
func appendU8(b []byte, v uint8) []byte {
	return append(b, v)
}

// appendU16 appends a little-endian 16-bit value.
func appendU16(b []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(b, tmp[:]...)
}

// appendU32 appends a little-endian 32-bit value.
func appendU32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// appendU64 appends a little-endian 64-bit value.
func appendU64(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

// segPointerSize is the on-wire size of a segment pointer: a 4-byte
// little-endian offset followed by a 4-byte little-endian length.
const segPointerSize = 8

// segmentWriter implements the segment engine from spec §4.2: a fixed
// header of known size sits at the front of an object, and every
// variable-length field in that header is an 8-byte segment pointer
// whose payload is appended to a tail buffer that follows the header.
// The offset in each pointer is measured from the start of the object
// that owns this writer (headerSize), never from an outer container.
//
// Nested objects (an offer inside a transaction, an AddAssets entry
// inside its asset list) are encoded independently with their own
// segmentWriter and then handed to the parent's appendSegment as an
// opaque blob; flat records such as Asset have no segments and are
// appended as plain bytes — that is the single recursive mechanism spec §4.2 asks
// for, used uniformly by every offer and transaction in this package.
type segmentWriter struct {
	headerSize int
	tail       []byte
}

func newSegmentWriter(headerSize int) *segmentWriter {
	return &segmentWriter{headerSize: headerSize}
}

// appendSegment appends payload to the tail and returns the 8-byte
// segment pointer that locates it, relative to this writer's object.
func (w *segmentWriter) appendSegment(payload []byte) [segPointerSize]byte {
	offset := uint32(w.headerSize + len(w.tail))
	length := uint32(len(payload))
	w.tail = append(w.tail, payload...)

	var ptr [segPointerSize]byte
	binary.LittleEndian.PutUint32(ptr[0:4], offset)
	binary.LittleEndian.PutUint32(ptr[4:8], length)
	return ptr
}

// finish concatenates the fixed header (which must be exactly
// headerSize bytes) with the accumulated tail.
func (w *segmentWriter) finish(header []byte) []byte {
	if len(header) != w.headerSize {
		panic("dmbc: segmentWriter header size mismatch")
	}
	out := make([]byte, 0, len(header)+len(w.tail))
	out = append(out, header...)
	out = append(out, w.tail...)
	return out
}
