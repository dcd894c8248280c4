package serializer

import (
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

// Options controls the output layout
type Options struct {
	// Indent is repeated once per nesting level when set. Elements holding
	// other elements open on their own line; scalar values stay on one
	// line. Empty means compact output.
	Indent string

	// MaxDepth bounds array/struct nesting. Zero selects value.DefaultMaxDepth.
	MaxDepth int
}

// Encoder renders values. It holds no mutable state.
type Encoder struct {
	opts Options
}

// NewEncoder creates an encoder with the given options
func NewEncoder(opts Options) *Encoder {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = value.DefaultMaxDepth
	}
	return &Encoder{opts: opts}
}

var defaultEncoder = NewEncoder(Options{})

// Default returns the shared compact encoder
func Default() *Encoder { return defaultEncoder }

// Options returns the effective options
func (e *Encoder) Options() Options { return e.opts }
