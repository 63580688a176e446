// Package snapshot writes and reads the live elements of a scalar
// rawvec.Vector in a compact binary format.
//
// Layout (little-endian):
//
//	magic        [4]byte  "RVEC"
//	version      uint8
//	elem kind    uint8    reflect.Kind of the element type
//	elem size    uint8    bytes per element
//	compression  uint8    None, LZ4 or ZSTD
//	count        uint64   number of elements
//	raw size     uint64   count * elem size
//	payload size uint64   bytes that follow
//	payload
//
// A payload that does not shrink under the requested compression is stored
// raw and flagged as None. Write can be throttled by the IO limit of a
// resource.Controller; Read is throttled by wrapping the reader with
// resource.NewRateLimitedReader.
package snapshot
