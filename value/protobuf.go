package value

import (
	"slices"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// classifyProto maps the protobuf well-known dynamic types. Timestamps are
// instants, so they serialize with their UTC wall clock fields.
func classifyProto(x any) (Kind, any, bool, error) {
	switch t := x.(type) {
	case *timestamppb.Timestamp:
		return KindDateTime, t.AsTime(), true, nil
	case structpb.NullValue:
		return KindNil, nil, true, nil
	case *structpb.Value:
		k, p, err := classifyProtoValue(t)
		return k, p, true, err
	case *structpb.Struct:
		return KindStruct, protoStructRecord(t), true, nil
	case *structpb.ListValue:
		return KindArray, protoListItems(t), true, nil
	}
	return 0, nil, false, nil
}

func classifyProtoValue(v *structpb.Value) (Kind, any, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return KindBoolean, k.BoolValue, nil
	case *structpb.Value_NumberValue:
		return classifyFloat(k.NumberValue)
	case *structpb.Value_StringValue:
		return KindString, k.StringValue, nil
	case *structpb.Value_StructValue:
		return KindStruct, protoStructRecord(k.StructValue), nil
	case *structpb.Value_ListValue:
		return KindArray, protoListItems(k.ListValue), nil
	}
	// NullValue and an unset kind
	return KindNil, nil, nil
}

// protoStructRecord sorts keys because protobuf map fields are unordered
func protoStructRecord(s *structpb.Struct) Record {
	fields := s.GetFields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	rec := make(Record, 0, len(keys))
	for _, k := range keys {
		rec = append(rec, Pair{Name: k, Value: fields[k]})
	}
	return rec
}

func protoListItems(l *structpb.ListValue) []any {
	values := l.GetValues()
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return items
}
