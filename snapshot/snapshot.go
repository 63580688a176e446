package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
	"unsafe"

	"github.com/hupe1980/rawvec"
	"github.com/hupe1980/rawvec/alloc"
	"github.com/hupe1980/rawvec/internal/conv"
	"github.com/hupe1980/rawvec/resource"
)

// Version is the current format version.
const Version uint8 = 1

var magic = [4]byte{'R', 'V', 'E', 'C'}

// Header is the fixed-size snapshot header.
type Header struct {
	Magic       [4]byte
	Version     uint8
	ElemKind    uint8
	ElemSize    uint8
	Compression Compression
	Count       uint64
	RawSize     uint64
	PayloadSize uint64
}

var littleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Write encodes the live elements of v to w.
func Write[T alloc.Scalar](ctx context.Context, w io.Writer, v *rawvec.Vector[T], optFns ...Option) error {
	if !littleEndian {
		return ErrByteOrder
	}
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	raw := bytesOf(v.Data())
	payload, c, err := compress(raw, opts.compression)
	if err != nil {
		return err
	}

	count, err := conv.IntToUint64(v.Len())
	if err != nil {
		return err
	}
	h := Header{
		Magic:       magic,
		Version:     Version,
		ElemKind:    elemKind[T](),
		ElemSize:    elemSize[T](),
		Compression: c,
		Count:       count,
		RawSize:     uint64(len(raw)),
		PayloadSize: uint64(len(payload)),
	}

	if opts.rc != nil {
		w = resource.NewRateLimitedWriter(ctx, w, opts.rc)
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadHeader reads and validates the header for element type T.
func ReadHeader[T alloc.Scalar](r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, err
	}
	if h.Magic != magic {
		return Header{}, fmt.Errorf("%w: %q", ErrBadMagic, h.Magic[:])
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	if h.ElemKind != elemKind[T]() || h.ElemSize != elemSize[T]() {
		var zero T
		return Header{}, fmt.Errorf("%w: snapshot holds %s (%d bytes), want %T",
			ErrElemMismatch, reflect.Kind(h.ElemKind), h.ElemSize, zero)
	}
	if h.PayloadSize > h.RawSize {
		return Header{}, fmt.Errorf("%w: payload %d bytes exceeds raw size %d", ErrCorrupt, h.PayloadSize, h.RawSize)
	}
	if err := checkExpansion(h.Compression, h.RawSize, h.PayloadSize); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Read decodes a snapshot into a new vector built with vecOpts.
// The vector's capacity equals the element count.
func Read[T alloc.Scalar](ctx context.Context, r io.Reader, vecOpts ...rawvec.Option[T]) (*rawvec.Vector[T], error) {
	if !littleEndian {
		return nil, ErrByteOrder
	}
	h, err := ReadHeader[T](r)
	if err != nil {
		return nil, err
	}

	count, err := conv.Uint64ToInt(h.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	rawSize, err := alloc.BlockBytes[T](count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if uint64(rawSize) != h.RawSize {
		return nil, fmt.Errorf("%w: raw size %d for %d elements", ErrCorrupt, h.RawSize, count)
	}

	// The buffer grows with the data actually read, not with the header's claim.
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, r, int64(h.PayloadSize)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := rawvec.New(vecOpts...)
	if count == 0 {
		return vec, nil
	}

	raw, err := decompress(payload.Bytes(), rawSize, h.Compression)
	if err != nil {
		return nil, err
	}
	elems := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), count) //nolint:gosec // raw is aligned and sized for count elements

	if err := vec.Reserve(count); err != nil {
		return nil, err
	}
	for _, e := range elems {
		if err := vec.PushBack(e); err != nil {
			vec.Free()
			return nil, err
		}
	}
	return vec, nil
}

func bytesOf[T alloc.Scalar](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero))) //nolint:gosec // scalar elements have no padding
}

func elemKind[T any]() uint8 {
	return uint8(reflect.TypeFor[T]().Kind())
}

func elemSize[T any]() uint8 {
	var zero T
	return uint8(unsafe.Sizeof(zero))
}
