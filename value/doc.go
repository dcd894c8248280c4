// Package value defines the XML-RPC value model and the classifier that maps
// dynamic Go values onto it.
//
// This package is organized into:
//   - value.go: the Value tagged union, its Kind and typed constructors
//   - classify.go: Classify and From, which inspect arbitrary Go values
//   - protobuf.go: structpb and timestamppb inputs
//   - yaml.go: ordered parameter lists decoded from YAML or JSON documents
//
// # Typed versus classified construction
//
// Values built with the constructors carry their kind explicitly:
//
//	v := value.Array(value.String("string1"), value.Int(3))
//	d := value.Double(3) // renders as <double>3.0</double>
//
// Values handed to From are classified by shape, first match wins:
// Nil, DateTime, Binary, Boolean, Integer/Double, String, Array, Struct.
// A float64 with no fractional part inside the safe integer range
// (±2^53-1) classifies as Integer; use the Double constructor when the
// wire type matters.
//
// Go maps have no iteration order, so map keys are emitted sorted. Use
// Record (or StructOf) when member order has to follow insertion order.
package value
