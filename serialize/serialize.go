// Package serialize persists a jsontoken.TokenStore (plus the input bytes
// its slices borrow from) to a compact byte stream, and restores it. Each
// token is written as (kind, flags, depth, offset, length); the stream can
// optionally be s2- or zstd-compressed.
package serialize

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"

	"github.com/mcvoid/jsontoken"
)

// CompressMode selects the codec applied to the serialized stream.
type CompressMode uint8

const (
	// CompressNone writes the stream uncompressed.
	CompressNone CompressMode = iota
	// CompressS2 applies klauspost/compress/s2, favoring speed.
	CompressS2
	// CompressZstd applies klauspost/compress/zstd, favoring ratio.
	CompressZstd
)

// ErrBadStream reports a corrupt or truncated serialized stream.
var ErrBadStream = errors.New("serialize: malformed token stream")

const magic = "JSTK" // jsontoken stream

// Dump writes store's tokens and the input bytes they reference to dst,
// compressed per mode. The store must come from a successful parse (a
// non-negative return from Parse); Dump does not itself validate JSON.
func Dump(dst io.Writer, store *jsontoken.TokenStore, input jsontoken.View, mode CompressMode) error {
	// The magic and mode byte go out uncompressed so Load can pick the
	// decompressor before touching the payload.
	var hdr bytes.Buffer
	hdr.WriteString(magic)
	hdr.WriteByte(byte(mode))
	if _, err := dst.Write(hdr.Bytes()); err != nil {
		return err
	}

	var body bytes.Buffer
	inputBytes := input.Bytes()
	writeUvarint(&body, uint64(len(inputBytes)))
	body.Write(inputBytes)

	count := store.Count()
	writeUvarint(&body, uint64(count))
	for i := 0; i < count; i++ {
		t := store.At(i)
		body.WriteByte(byte(t.Kind))
		body.WriteByte(byte(t.Flags))
		writeUvarint(&body, uint64(t.Depth))
		writeUvarint(&body, uint64(store.Start(i)))
		writeUvarint(&body, uint64(len(t.Slice.Bytes())))
	}

	w, flush, err := compressWriter(dst, mode)
	if err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	return flush()
}

// Load reads a stream written by Dump, restoring the input bytes and
// populating store (which must have at least as much capacity as the
// stream's token count, or Load returns jsontoken.ErrNoTokens).
func Load(src io.Reader, store *jsontoken.TokenStore) (input []byte, err error) {
	mode, body, err := readHeader(src)
	if err != nil {
		return nil, err
	}
	r, err := decompressReader(body, mode)
	if err != nil {
		return nil, err
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewReader(plain)
	inputLen, err := binary.ReadUvarint(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	input = make([]byte, inputLen)
	if _, err := io.ReadFull(buf, input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStream, err)
	}

	count, err := binary.ReadUvarint(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	view := jsontoken.NewView(input)
	store.Reset()
	for i := uint64(0); i < count; i++ {
		kind, depth, flags, off, n, rerr := readToken(buf)
		if rerr != nil {
			return nil, rerr
		}
		if err := store.LoadToken(view, kind, depth, flags, int(off), int(n)); err != nil {
			return nil, err
		}
	}
	return input, nil
}

func readHeader(src io.Reader) (CompressMode, io.Reader, error) {
	hdr := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(src, hdr); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	if string(hdr[:len(magic)]) != magic {
		return 0, nil, ErrBadStream
	}
	return CompressMode(hdr[len(magic)]), src, nil
}

func readToken(buf *bytes.Reader) (kind jsontoken.Kind, depth int, flags jsontoken.Flags, off, n uint64, err error) {
	kb, err := buf.ReadByte()
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	fb, err := buf.ReadByte()
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	d, err := binary.ReadUvarint(buf)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	off, err = binary.ReadUvarint(buf)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	n, err = binary.ReadUvarint(buf)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	return jsontoken.Kind(kb), int(d), jsontoken.Flags(fb), off, n, nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func compressWriter(dst io.Writer, mode CompressMode) (w io.Writer, flush func() error, err error) {
	switch mode {
	case CompressNone:
		return dst, func() error { return nil }, nil
	case CompressS2:
		enc := s2.NewWriter(dst)
		return enc, enc.Close, nil
	case CompressZstd:
		enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, nil, err
		}
		return enc, enc.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown compress mode %d", ErrBadStream, mode)
	}
}

func decompressReader(src io.Reader, mode CompressMode) (io.Reader, error) {
	switch mode {
	case CompressNone:
		return src, nil
	case CompressS2:
		return s2.NewReader(src), nil
	case CompressZstd:
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: unknown compress mode %d", ErrBadStream, mode)
	}
}
