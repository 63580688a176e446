package snapshot

import "errors"

var (
	// ErrBadMagic is returned when the input does not start with a snapshot header.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrVersion is returned for snapshots written by an unknown format version.
	ErrVersion = errors.New("snapshot: unsupported version")
	// ErrElemMismatch is returned when the element type of the snapshot differs
	// from the requested one.
	ErrElemMismatch = errors.New("snapshot: element type mismatch")
	// ErrCorrupt is returned when the header and payload disagree.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
	// ErrByteOrder is returned on big-endian hosts.
	ErrByteOrder = errors.New("snapshot: big-endian hosts are not supported")
)
