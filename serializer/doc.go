// Package serializer renders XML-RPC values and wraps them in methodCall and
// methodResponse envelopes.
//
// This package is organized into:
//   - encoder.go: Encoder options and construction
//   - xml.go: value rendering with escaping and CDATA
//   - envelope.go: methodCall / methodResponse documents
//
// All serialization is done manually with a strings.Builder for precise
// control over output format. Output is a pure function of the input: the
// same tree always yields the same bytes, and an Encoder may be shared
// between goroutines as long as nobody mutates the values being rendered.
//
//	enc := serializer.NewEncoder(serializer.Options{})
//	doc, err := enc.MethodCall("testMethod", []value.Value{value.Bool(true)})
//	// <?xml version="1.0"?>
//	// <methodCall><methodName>testMethod</methodName><params><param><value><boolean>1</boolean></value></param></params></methodCall>
package serializer
