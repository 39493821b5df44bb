package rleplus

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/filecoin-project/bitsets/errs"
)

func bitsFromBools(vals ...int) []bool {
	out := make([]bool, len(vals))
	for i, v := range vals {
		out[i] = v != 0
	}
	return out
}

func streamBits(t *testing.T, s *Stream) []bool {
	t.Helper()
	out := make([]bool, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		byteIdx := i / 8
		out = append(out, s.Bytes()[byteIdx]&(1<<uint(i%8)) != 0)
	}
	return out
}

func TestEncodeEightZeros(t *testing.T) {
	in := bitsFromBools(0, 0, 0, 0, 0, 0, 0, 0)
	want := bitsFromBools(0, 0, 1, 0, 0, 0, 1)
	got := streamBits(t, Encode(in))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEncodeFourZerosOneOneThreeZeros(t *testing.T) {
	in := bitsFromBools(0, 0, 0, 0, 1, 0, 0, 0)
	want := bitsFromBools(0, 0, 1, 0, 0, 1, 0, 1, 0, 1, 1, 1, 0, 0)
	got := streamBits(t, Encode(in))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEncodeDecodeEmpty(t *testing.T) {
	s := Encode(nil)
	if s.Len() != 0 {
		t.Fatalf("Encode(nil).Len() = %d, want 0", s.Len())
	}
	out, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Decode(empty) = %v, want empty", out)
	}
}

func TestRoundTripScenarios(t *testing.T) {
	cases := [][]bool{
		bitsFromBools(0, 0, 0, 0, 0, 0, 0, 0),
		bitsFromBools(0, 0, 0, 0, 1, 0, 0, 0),
		bitsFromBools(1),
		bitsFromBools(0),
		bitsFromBools(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
	}
	for i, c := range cases {
		enc := Encode(c)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("case %d: Decode: %v", i, err)
		}
		if !reflect.DeepEqual(dec, c) {
			t.Fatalf("case %d: round trip mismatch\n got: %v\nwant: %v", i, dec, c)
		}
	}
}

func TestRoundTripRandomSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		n := rng.Intn(1000)
		bits := make([]bool, n)
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		enc := Encode(bits)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("len=%d: Decode: %v", n, err)
		}
		if !reflect.DeepEqual(dec, bits) {
			t.Fatalf("len=%d: round trip mismatch", n)
		}
	}
}

func TestRoundTripRandomLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		n := rng.Intn(100000)
		bits := make([]bool, n)
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		enc := Encode(bits)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("len=%d: Decode: %v", n, err)
		}
		if !reflect.DeepEqual(dec, bits) {
			t.Fatalf("len=%d: round trip mismatch", n)
		}
	}
}

func TestDecodeTruncatedVarint(t *testing.T) {
	// A run of length >= 16 takes the varint branch; truncate it mid-byte.
	bits := make([]bool, 20)
	enc := Encode(bits)
	truncated := NewStream(enc.Bytes(), enc.Len()-3)
	if _, err := Decode(truncated); err != errs.ErrMalformedStream {
		t.Fatalf("err = %v, want ErrMalformedStream", err)
	}
}

func TestDecodeDanglingPrefix(t *testing.T) {
	w := NewStream([]byte{0x01}, 2) // initial bit 1 (bit 0 of the byte), then a lone "0" prefix bit with nothing after it
	if _, err := Decode(w); err != errs.ErrMalformedStream {
		t.Fatalf("err = %v, want ErrMalformedStream", err)
	}
}

func TestAllSameInputSingleRun(t *testing.T) {
	bits := make([]bool, 50)
	for i := range bits {
		bits[i] = true
	}
	enc := Encode(bits)
	got := streamBits(t, enc)
	// initial bit + "00" varint prefix + varint(50)
	if !got[0] {
		t.Fatalf("initial bit = %v, want true", got[0])
	}
	if got[1] != false || got[2] != false {
		t.Fatalf("prefix = %v %v, want varint prefix 00", got[1], got[2])
	}
}
