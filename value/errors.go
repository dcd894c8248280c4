package value

import "errors"

var (
	// ErrUnsupportedType is returned for Go values with no XML-RPC counterpart
	// (funcs, channels, complex numbers, maps keyed by non-strings, NaN).
	ErrUnsupportedType = errors.New("xmlrpc: unsupported type")

	// ErrMalformedBinary is returned when a base64 payload does not decode
	ErrMalformedBinary = errors.New("xmlrpc: malformed binary")

	// ErrTooDeep is returned when nesting exceeds the configured depth limit.
	// Cyclic inputs end here instead of exhausting the stack.
	ErrTooDeep = errors.New("xmlrpc: value nested too deeply")
)
