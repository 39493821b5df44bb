// Package rleplus implements the RLE+ variable-length run code: a
// non-byte-aligned bit stream whose first bit gives the polarity of the
// first run, followed by a sequence of alternating-polarity run lengths
// encoded with a three-way prefix (single bit, 4-bit, or LEB128 varint).
//
// Ported from the original RLE+ codec (filecoin-project/bitsets,
// src/rleplus.rs).
package rleplus

import (
	"github.com/filecoin-project/bitsets/errs"
	"github.com/filecoin-project/bitsets/rleplus/bitio"
)

// shortRunMax is the largest run length the 4-bit prefix form can carry.
const shortRunMax = 15

// Stream is a packed, non-byte-aligned RLE+ bit stream as produced by
// Encode. The bit length is carried alongside the bytes because the
// stream is not self-delimiting (§6).
type Stream struct {
	bits  []byte
	nbits int
}

// NewStream wraps a packed byte buffer as an RLE+ stream with nbits valid
// bits, least-significant bit first within each byte.
func NewStream(bits []byte, nbits int) *Stream {
	return &Stream{bits: bits, nbits: nbits}
}

// Bytes returns the packed stream bytes. Bits beyond Len() in the final
// byte are zero-padded.
func (s *Stream) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.bits
}

// Len reports the number of valid bits in the stream.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return s.nbits
}

// Encode converts a dense bit sequence into its RLE+ encoding. An empty
// input produces an empty stream.
func Encode(bits []bool) *Stream {
	if len(bits) == 0 {
		return &Stream{}
	}

	w := &bitio.Writer{}
	current := bits[0]
	w.WriteBit(current)

	count := 1
	n := len(bits)
	for i := 1; i <= n; i++ {
		end := i == n
		if !end && bits[i] == current {
			count++
			continue
		}
		writeRun(w, count)
		count = 1
		if !end {
			current = bits[i]
		}
	}

	return &Stream{bits: w.Bytes(), nbits: w.Len()}
}

func writeRun(w *bitio.Writer, count int) {
	switch {
	case count == 1:
		w.WriteBit(true)
	case count <= shortRunMax:
		w.WriteBit(false)
		w.WriteBit(true)
		w.WriteBitsLSB(uint64(count), 4)
	default:
		w.WriteBit(false)
		w.WriteBit(false)
		writeVarint(w, uint64(count))
	}
}

func writeVarint(w *bitio.Writer, v uint64) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByteLSB(b)
		if v == 0 {
			return
		}
	}
}

// Decode reconstructs the original bit sequence from an RLE+ stream. An
// empty stream decodes to an empty sequence. A truncated varint, a
// dangling multi-bit prefix with no following continuation bit, or any
// other premature end of stream returns ErrMalformedStream.
func Decode(s *Stream) ([]bool, error) {
	if s.Len() == 0 {
		return []bool{}, nil
	}

	r := bitio.NewReader(s.Bytes(), s.Len())
	cur, ok := r.ReadBit()
	if !ok {
		return nil, errs.ErrMalformedStream
	}

	var out []bool
	for r.Remaining() > 0 {
		single, ok := r.ReadBit()
		if !ok {
			return nil, errs.ErrMalformedStream
		}
		if single {
			out = append(out, cur)
			cur = !cur
			continue
		}

		wide, ok := r.ReadBit()
		if !ok {
			return nil, errs.ErrMalformedStream
		}

		var length int
		if wide {
			v, ok := r.ReadBitsLSB(4)
			if !ok {
				return nil, errs.ErrMalformedStream
			}
			length = int(v)
		} else {
			v, err := readVarint(r)
			if err != nil {
				return nil, err
			}
			length = int(v)
		}

		for k := 0; k < length; k++ {
			out = append(out, cur)
		}
		cur = !cur
	}

	return out, nil
}

func readVarint(r *bitio.Reader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, ok := r.ReadByteLSB()
		if !ok {
			return 0, errs.ErrMalformedStream
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, errs.ErrMalformedStream
		}
	}
}
