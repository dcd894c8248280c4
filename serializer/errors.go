package serializer

import (
	"errors"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

// ErrInvalidParameterCount is returned when a methodResponse is asked for
// anything other than exactly one parameter
var ErrInvalidParameterCount = errors.New("xmlrpc: methodResponse takes exactly one parameter")

// Re-exported so callers only need this package for errors.Is checks
var (
	ErrUnsupportedType = value.ErrUnsupportedType
	ErrMalformedBinary = value.ErrMalformedBinary
	ErrTooDeep         = value.ErrTooDeep
)
