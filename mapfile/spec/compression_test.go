package spec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/eak1mov/go-tilemap/mapfile/spec"
	"github.com/google/go-cmp/cmp"
)

func TestCompression(t *testing.T) {
	for _, tc := range []struct {
		Name string
		Data []byte
	}{
		{Name: "Repeat", Data: bytes.Repeat([]byte{42}, 100500)},
		{Name: "Foobar", Data: []byte("foobar")},
		{Name: "Empty", Data: []byte{}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			var compressed bytes.Buffer
			writer, err := spec.NewDeflateWriter(&compressed)
			if err != nil {
				t.Fatalf("NewDeflateWriter failed: %v", err)
			}
			if _, err := writer.Write(tc.Data); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if err := writer.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			// Bytes after the stream end belong to the caller.
			compressed.WriteString("tail")

			reader := spec.NewDeflateReader(&compressed)
			defer reader.Close()
			decompressed, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if !cmp.Equal(tc.Data, decompressed) {
				t.Errorf("decompressed data != input")
			}
		})
	}
}
