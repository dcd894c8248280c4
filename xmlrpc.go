// Package xmlrpc turns dynamic Go values into XML-RPC methodCall and
// methodResponse documents.
//
// The functions here classify plain Go values (bool, numbers, strings,
// time.Time, []byte, slices, maps, structs) with the value package and
// render them with the default compact serializer:
//
//	doc, err := xmlrpc.SerializeMethodCall("testMethod", []any{[]any{"string1", 3}})
//
// Use value and serializer directly for typed construction, indentation
// or a custom depth limit.
package xmlrpc

import (
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/serializer"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

// SerializeMethodCall builds a methodCall document for name and params
func SerializeMethodCall(name string, params []any) (string, error) {
	return serializer.Default().MethodCallAny(name, params)
}

// SerializeMethodResponse builds a methodResponse document. params must
// hold exactly one value.
func SerializeMethodResponse(params []any) (string, error) {
	return serializer.Default().MethodResponseAny(params)
}

// Render returns the typed XML-RPC element for x, without <value>
func Render(x any) (string, error) {
	return serializer.Default().RenderAny(x)
}

// Classify reports the XML-RPC kind x maps to
func Classify(x any) (value.Kind, error) {
	return value.Classify(x)
}
