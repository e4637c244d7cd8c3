package main

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Serialize writes data in a fixed binary format. data must have a fixed size
// (no int, no strings, no maps), see encoding/binary.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	if n < 0 {
		n = 0
	}
	*s = make([]T, n)
	Deserialize(r, *s)
}

func SerializeString(w io.Writer, s string) {
	SerializeSlice(w, []byte(s))
}

func DeserializeString(r io.Reader) string {
	var b []byte
	DeserializeSlice(r, &b)
	return string(b)
}

func Zip(data []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	Check(err)
	if err != nil {
		return nil
	}
	defer func(enc *zstd.Encoder) { Check(enc.Close()) }(enc)
	return enc.EncodeAll(data, nil)
}

func Unzip(data []byte) []byte {
	dec, err := zstd.NewReader(nil)
	Check(err)
	if err != nil {
		return nil
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	Check(err)
	return out
}
