package binget_test

import (
	"context"
	"encoding/binary"
	"testing"

	binget "github.com/reoring/binget"
	"github.com/reoring/binget/codec"
	"github.com/reoring/binget/source"
)

// record mirrors a small fixed-layout wire record: u16 tag, u32 length,
// payload.
func recordGet() binget.Get[int] {
	return binget.Bind(binget.GetUint16BE(), func(tag uint16) binget.Get[int] {
		return binget.Bind(binget.GetUint32BE(), func(n uint32) binget.Get[int] {
			return binget.Map(binget.GetBytes(int(n)), func(b []byte) int {
				return int(tag) + len(b)
			})
		})
	})
}

func recordBytes(payload int) []byte {
	out := binary.BigEndian.AppendUint16(nil, 7)
	out = binary.BigEndian.AppendUint32(out, uint32(payload))
	return append(out, make([]byte, payload)...)
}

func BenchmarkRunBytes_Contiguous(b *testing.B) {
	data := recordBytes(1024)
	g := recordGet()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := binget.RunBytes(g, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_SmallChunks(b *testing.B) {
	data := recordBytes(1024)
	var chunks [][]byte
	for off := 0; off < len(data); off += 64 {
		end := off + 64
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[off:end])
	}
	g := recordGet()
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := binget.Run(ctx, g, source.Chunks(chunks...)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_PerByteChunks(b *testing.B) {
	data := recordBytes(256)
	chunks := make([][]byte, len(data))
	for i := range data {
		chunks[i] = data[i : i+1]
	}
	g := recordGet()
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := binget.Run(ctx, g, source.Chunks(chunks...)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFrame_JSON(b *testing.B) {
	payload := []byte(`{"id":"bench","seq":1,"note":"payload"}`)
	data := binary.BigEndian.AppendUint32(nil, uint32(len(payload)))
	data = append(data, payload...)
	type event struct {
		ID   string `json:"id"`
		Seq  int    `json:"seq"`
		Note string `json:"note"`
	}
	g := codec.Frame[event](codec.JSON())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := binget.RunBytes(g, data); err != nil {
			b.Fatal(err)
		}
	}
}
