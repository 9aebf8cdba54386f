package binget_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	binget "github.com/reoring/binget"
	"github.com/reoring/binget/source"
)

func TestRun_ReaderSource(t *testing.T) {
	r := strings.NewReader("\x00\x05hello tail")
	g := binget.Bind(binget.GetUint16BE(), func(n uint16) binget.Get[string] {
		return binget.GetString(int(n))
	})
	v, err := binget.Run(context.Background(), g, source.Reader(r, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Fatalf("want %q, got %q", "hello", v)
	}
}

func TestRunRest_ExposesLeftover(t *testing.T) {
	v, rest, err := binget.RunRest(context.Background(), binget.GetBytes(2),
		source.Chunks([]byte{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(v, []byte{1, 2}) {
		t.Fatalf("value: %v", v)
	}
	if !bytes.Equal(rest.Bytes(), []byte{3, 4}) {
		t.Fatalf("leftover: %v", rest.Bytes())
	}
}

type failingSource struct{ err error }

func (s failingSource) Next(ctx context.Context) ([]byte, error) { return nil, s.err }

func TestRun_SourceErrorPropagates(t *testing.T) {
	cause := errors.New("connection reset")
	_, err := binget.Run(context.Background(), binget.GetUint8(), failingSource{err: cause})
	de, ok := binget.AsDecodeError(err)
	if !ok || de.Code != binget.CodeSourceError {
		t.Fatalf("want source_error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not wrapped: %v", err)
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := binget.Run(ctx, binget.GetUint8(), source.Chunks([]byte{1}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRun_LimitedSource(t *testing.T) {
	// A byte budget below the computation's requirement must surface as
	// insufficient input, not as a short value.
	src := source.Limit(source.Bytes(bytes.Repeat([]byte{0xab}, 16)), 3)
	_, err := binget.Run(context.Background(), binget.GetUint32BE(), src)
	if !binget.IsInsufficientInput(err) {
		t.Fatalf("want insufficient input, got %v", err)
	}
}

// TestStart_ManualDrive exercises the event-loop path: inspecting Suspended
// results and feeding chunks by hand.
func TestStart_ManualDrive(t *testing.T) {
	g := binget.Bind(binget.GetUint16BE(), func(hi uint16) binget.Get[uint32] {
		return binget.Map(binget.GetUint16BE(), func(lo uint16) uint32 {
			return uint32(hi)<<16 | uint32(lo)
		})
	})

	res := binget.Start(g)
	for _, chunk := range [][]byte{{0xde}, {0xad, 0xbe}, {0xef}} {
		s, ok := res.(binget.Suspended[uint32])
		if !ok {
			t.Fatalf("expected suspension, got %T", res)
		}
		res = s.Feed(chunk)
	}
	done, ok := res.(binget.Done[uint32])
	if !ok {
		t.Fatalf("expected Done, got %T", res)
	}
	if done.Value != 0xdeadbeef {
		t.Fatalf("want 0xdeadbeef, got %#x", done.Value)
	}
	if done.Consumed != 4 {
		t.Fatalf("want 4 consumed, got %d", done.Consumed)
	}
}

func TestStart_EndWithoutEnoughInput(t *testing.T) {
	res := binget.Start(binget.GetUint32BE())
	s, ok := res.(binget.Suspended[uint32])
	if !ok {
		t.Fatalf("expected suspension, got %T", res)
	}
	if s.Consumed() != 0 {
		t.Fatalf("nothing consumed yet, got %d", s.Consumed())
	}
	res = s.Feed([]byte{1, 2})
	s, ok = res.(binget.Suspended[uint32])
	if !ok {
		t.Fatalf("expected suspension, got %T", res)
	}
	failed, ok := s.End().(binget.Failed[uint32])
	if !ok {
		t.Fatalf("expected failure after End")
	}
	if !binget.IsInsufficientInput(failed.Err) {
		t.Fatalf("want insufficient input, got %v", failed.Err)
	}
}

func TestRunBytes_WholeInput(t *testing.T) {
	g := binget.Bind(binget.GetUvarint(), func(n uint64) binget.Get[[]byte] {
		return binget.GetBytes(int(n))
	})
	v, rest, err := binget.RunBytes(g, []byte{3, 'a', 'b', 'c', 'x'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v) != "abc" {
		t.Fatalf("want abc, got %q", v)
	}
	if string(rest.Bytes()) != "x" {
		t.Fatalf("leftover %q", rest.Bytes())
	}
}

// Two computations interleaved on one goroutine over separate streams; each
// owns its own buffer and cursor exclusively.
func TestRun_InterleavedComputations(t *testing.T) {
	a := binget.Start(binget.GetUint16BE())
	b := binget.Start(binget.GetUint16LE())

	a = a.(binget.Suspended[uint16]).Feed([]byte{0x12})
	b = b.(binget.Suspended[uint16]).Feed([]byte{0x12})
	a = a.(binget.Suspended[uint16]).Feed([]byte{0x34})
	b = b.(binget.Suspended[uint16]).Feed([]byte{0x34})

	if av := a.(binget.Done[uint16]).Value; av != 0x1234 {
		t.Fatalf("a: want 0x1234, got %#x", av)
	}
	if bv := b.(binget.Done[uint16]).Value; bv != 0x3412 {
		t.Fatalf("b: want 0x3412, got %#x", bv)
	}
}
