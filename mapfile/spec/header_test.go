package spec_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/eak1mov/go-tilemap/mapfile/spec"
	"github.com/stretchr/testify/require"
)

func TestHeaderByteOrder(t *testing.T) {
	header := spec.Header{Width: 4, Height: 2}

	var big bytes.Buffer
	require.NoError(t, spec.WriteHeader(&big, binary.BigEndian, header))
	require.Equal(t, []byte{0x00, 0x04, 0x00, 0x02}, big.Bytes())

	var little bytes.Buffer
	require.NoError(t, spec.WriteHeader(&little, binary.LittleEndian, header))
	require.Equal(t, []byte{0x04, 0x00, 0x02, 0x00}, little.Bytes())
}

func TestHeaderSerializer(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		header1 := spec.Header{Width: 0x1234, Height: 0xfedc}
		var buffer bytes.Buffer
		require.NoError(t, spec.WriteHeader(&buffer, order, header1))
		require.Equal(t, spec.HeaderLength, buffer.Len())
		header2, err := spec.ReadHeader(&buffer, order)
		require.NoError(t, err)
		require.Equal(t, header1, header2)
		require.Equal(t, 0x1234*0xfedc, header2.Cells())
	}
}

func TestHeaderErrors(t *testing.T) {
	_, err := spec.ReadHeader(bytes.NewReader([]byte{0x00, 0x04, 0x00}), binary.BigEndian)
	require.Truef(t, errors.Is(err, spec.ErrTruncated), "%v", err)
	require.Truef(t, errors.Is(err, io.ErrUnexpectedEOF), "%v", err)
}

func TestMagic(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, spec.WriteMagic(&buffer))
	require.Equal(t, []byte("CMAP"), buffer.Bytes())
	require.NoError(t, spec.ReadMagic(&buffer))

	err := spec.ReadMagic(bytes.NewReader([]byte("PMAPxxxx")))
	require.Truef(t, errors.Is(err, spec.ErrInvalidMagic), "%v", err)
	require.Falsef(t, errors.Is(err, spec.ErrTruncated), "%v", err)

	err = spec.ReadMagic(bytes.NewReader([]byte("CM")))
	require.Truef(t, errors.Is(err, spec.ErrInvalidMagic), "%v", err)
	require.Truef(t, errors.Is(err, spec.ErrTruncated), "%v", err)
}
