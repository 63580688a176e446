package snapshot

import "github.com/hupe1980/rawvec/resource"

type options struct {
	compression Compression
	rc          *resource.Controller
}

// Option configures Write.
type Option func(*options)

// WithCompression selects the payload compression. Default: None.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithController throttles the write with the IO limit of rc.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}
