package snapshot

import (
	"fmt"
	"sync"

	"github.com/hupe1980/rawvec/internal/mem"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the payload encoding.
type Compression uint8

const (
	// None stores the payload raw.
	None Compression = 0
	// LZ4 uses LZ4 block compression (fast).
	LZ4 Compression = 1
	// ZSTD uses Zstandard (better ratio).
	ZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Upper bounds on how far a payload can expand. An LZ4 block reaches at most
// 255 output bytes per input byte plus its final literals; a 4-byte ZSTD RLE
// block yields at most 128 KiB.
const (
	lz4MaxExpansion  = 255
	lz4Slack         = 16
	zstdMaxExpansion = 1 << 15
	zstdSlack        = 1 << 17

	// zstdMinMemory keeps the decoder limit above the smallest zstd window.
	zstdMinMemory = 1 << 20
)

var zstdEncoderPool sync.Pool

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

// checkExpansion rejects headers whose raw size cannot be produced from the
// payload size with compression c.
func checkExpansion(c Compression, rawSize, payloadSize uint64) error {
	var limit uint64
	switch c {
	case None:
		limit = payloadSize
		if rawSize != payloadSize {
			return fmt.Errorf("%w: raw payload of %d bytes, want %d", ErrCorrupt, payloadSize, rawSize)
		}
	case LZ4:
		limit = lz4MaxExpansion*payloadSize + lz4Slack
	case ZSTD:
		limit = zstdMaxExpansion*payloadSize + zstdSlack
	default:
		return fmt.Errorf("%w: unknown compression %s", ErrCorrupt, c)
	}
	if rawSize > limit {
		return fmt.Errorf("%w: %d payload bytes cannot expand to %d with %s", ErrCorrupt, payloadSize, rawSize, c)
	}
	return nil
}

// compress encodes raw with c. It returns raw and None when compression
// does not shrink the payload.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if len(raw) == 0 {
		return raw, None, nil
	}

	var out []byte
	switch c {
	case None:
		return raw, None, nil
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, None, err
		}
		out = buf[:n] // n == 0: incompressible
	case ZSTD:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, None, err
		}
		out = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, None, fmt.Errorf("snapshot: unknown compression %s", c)
	}

	if len(out) == 0 || len(out) >= len(raw) {
		return raw, None, nil
	}
	return out, c, nil
}

// decompress decodes payload into a new 64-byte aligned buffer of rawSize
// bytes. The caller has validated the sizes with checkExpansion.
func decompress(payload []byte, rawSize int, c Compression) ([]byte, error) {
	switch c {
	case None:
		if len(payload) != rawSize {
			return nil, fmt.Errorf("%w: raw payload of %d bytes, want %d", ErrCorrupt, len(payload), rawSize)
		}
		dst := mem.AllocAligned(rawSize)
		copy(dst, payload)
		return dst, nil

	case LZ4:
		dst := mem.AllocAligned(rawSize)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrCorrupt, n, rawSize)
		}
		return dst, nil

	case ZSTD:
		// The decoder refuses frames that would grow far beyond rawSize.
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(max(uint64(rawSize), zstdMinMemory)),
		)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		decoded, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if len(decoded) != rawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrCorrupt, len(decoded), rawSize)
		}
		dst := mem.AllocAligned(rawSize)
		copy(dst, decoded)
		return dst, nil

	default:
		return nil, fmt.Errorf("%w: unknown compression %s", ErrCorrupt, c)
	}
}
