// Package bench is the excluded benchmark harness described in §1 of the
// bitset spec ("an external collaborator... out of scope"): it drives the
// concise and rleplus codecs with random input and reports their size
// against a handful of general-purpose byte-stream compressors and a
// second real compressed-bitset library, roaring. None of this package is
// part of the core codec surface.
package bench

import (
	"bytes"
	"compress/gzip"
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/klauspost/compress/zstd"

	"github.com/filecoin-project/bitsets/concise"
	"github.com/filecoin-project/bitsets/internal/randbits"
	"github.com/filecoin-project/bitsets/log"
	"github.com/filecoin-project/bitsets/rleplus"
)

// Scenario names the two input shapes the original benchmark compared,
// mirroring main.rs's "random selections" and "contiguous selections"
// loops.
type Scenario int

const (
	// Random scatters individually chosen positions across the universe.
	Random Scenario = iota
	// Contiguous selects a single contiguous run.
	Contiguous
)

// Result holds the size comparison for one run.
type Result struct {
	Scenario      Scenario
	TotalBits     int
	SetBits       int
	RawBytes      int
	ConciseBytes  int
	RLEPlusBytes  int
	RoaringBytes  int
	GzipBytes     int
	ZstdBytes     int
}

// Run drives one scenario of size totalBits, seeded for reproducibility,
// and reports the size of every representation.
func Run(scenario Scenario, totalBits int, seed uint64) (Result, error) {
	var positions []int
	switch scenario {
	case Random:
		positions = randomPositions(seed, totalBits)
	case Contiguous:
		positions = contiguousPositions(seed, totalBits)
	default:
		return Result{}, fmt.Errorf("bench: unknown scenario %d", scenario)
	}

	dense := make([]bool, totalBits)
	for _, p := range positions {
		dense[p] = true
	}

	cb := concise.New()
	for _, p := range positions {
		if err := cb.Append(p); err != nil {
			return Result{}, fmt.Errorf("bench: concise append: %w", err)
		}
	}

	rle := rleplus.Encode(dense)

	rb := roaring.New()
	for _, p := range positions {
		rb.Add(uint32(p))
	}
	rb.RunOptimize()

	gzipSize, err := gzipSize(rle.Bytes())
	if err != nil {
		return Result{}, fmt.Errorf("bench: gzip: %w", err)
	}
	zstdSize, err := zstdSize(rle.Bytes())
	if err != nil {
		return Result{}, fmt.Errorf("bench: zstd: %w", err)
	}

	res := Result{
		Scenario:     scenario,
		TotalBits:    totalBits,
		SetBits:      len(positions),
		RawBytes:     (totalBits + 7) / 8,
		ConciseBytes: cb.SizeBytes(),
		RLEPlusBytes: (rle.Len() + 7) / 8,
		RoaringBytes: int(rb.GetSerializedSizeInBytes()),
		GzipBytes:    gzipSize,
		ZstdBytes:    zstdSize,
	}

	log.Logger.Debug().
		Int("total_bits", res.TotalBits).
		Int("set_bits", res.SetBits).
		Int("concise_bytes", res.ConciseBytes).
		Int("rleplus_bytes", res.RLEPlusBytes).
		Int("roaring_bytes", res.RoaringBytes).
		Msg("bench run complete")

	return res, nil
}

func randomPositions(seed uint64, totalBits int) []int {
	if totalBits <= 1 {
		return nil
	}
	selected := 1 + int(seed%uint64(totalBits/10+1))
	dense := randbits.Dense(seed, totalBits, float64(selected)/float64(totalBits))
	return randbits.PositionsFromDense(dense)
}

func contiguousPositions(seed uint64, totalBits int) []int {
	if totalBits <= 3 {
		return nil
	}
	dense := make([]bool, totalBits)
	span := totalBits / 3
	if span < 1 {
		span = 1
	}
	runLen := 1 + int(seed%uint64(span))
	start := int((seed / 7) % uint64(totalBits-runLen))
	for i := start; i < start+runLen && i < totalBits; i++ {
		dense[i] = true
	}
	return randbits.PositionsFromDense(dense)
}

func gzipSize(b []byte) (int, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(b); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func zstdSize(b []byte) (int, error) {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(b); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
