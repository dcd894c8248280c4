package serializer_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/internal/testutil"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/serializer"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

const multilineHTML = `<html>
<head><title>Go testing!</title></head>
<body>Congrats</body>
</html>`

// TestMethodCall_GoodFood compares serialized calls with the stored documents
func TestMethodCall_GoodFood(t *testing.T) {
	tests := []struct {
		fixture string
		method  string
		params  []any
	}{
		{"boolean_true_call.xml", "testMethod", []any{true}},
		{"boolean_false_call.xml", "testMethod", []any{false}},
		{"datetime_call.xml", "testMethod", []any{time.Date(2012, time.June, 7, 11, 35, 10, 0, time.Local)}},
		{"base64_call.xml", "testMethod", []any{[]byte("testing")}},
		{"double_positive_call.xml", "testMethod", []any{17.5}},
		{"double_negative_call.xml", "testMethod", []any{-32.7777}},
		{"double_integral_call.xml", "testMethod", []any{value.Double(3)}},
		{"int_positive_call.xml", "testMethod", []any{17}},
		{"int_negative_call.xml", "testMethod", []any{-32}},
		{"int_zero_call.xml", "testMethod", []any{0}},
		{"nil_call.xml", "testMethod", []any{nil}},
		{"string_call.xml", "testMethod", []any{"testString"}},
		{"string_escaped_call.xml", "testMethod", []any{"fish & chips > salad"}},
		{"string_cdata_call.xml", "testCDATAMethod", []any{"<html><body>Congrats</body></html>"}},
		{"string_multiline_cdata_call.xml", "testCDATAMethod", []any{multilineHTML}},
		{"string_empty_call.xml", "testMethod", []any{""}},
		{"array_simple_call.xml", "testMethod", []any{[]any{"string1", 3}}},
		{"array_empty_call.xml", "testMethod", []any{[]any{}}},
		{"struct_simple_call.xml", "testMethod", []any{value.Record{
			{Name: "stringName", Value: "string1"},
			{Name: "intName", Value: 3},
		}}},
		{"struct_empty_property_call.xml", "testMethod", []any{value.Record{
			{Name: "stringName", Value: ""},
			{Name: "intName", Value: 3},
		}}},
		{"struct_nested_call.xml", "testMethod", []any{value.Record{
			{Name: "stringName", Value: "string1"},
			{Name: "objectName", Value: value.Record{{Name: "intName", Value: 4}}},
		}}},
		{"struct_empty_call.xml", "testMethod", []any{map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSuffix(tt.fixture, ".xml"), func(t *testing.T) {
			want := testutil.LoadFixture(t, "good_food/"+tt.fixture)

			got, err := serializer.Default().MethodCallAny(tt.method, tt.params)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMethodResponse_GoodFood(t *testing.T) {
	tests := []struct {
		fixture string
		param   bool
	}{
		{"boolean_true_response.xml", true},
		{"boolean_false_response.xml", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSuffix(tt.fixture, ".xml"), func(t *testing.T) {
			want := testutil.LoadFixture(t, "good_food/"+tt.fixture)

			got, err := serializer.Default().MethodResponse([]value.Value{value.Bool(tt.param)})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMethodCall_Indented(t *testing.T) {
	want := testutil.LoadFixture(t, "good_food/struct_nested_call_indented.xml")

	enc := serializer.NewEncoder(serializer.Options{Indent: "  "})
	param := value.StructOf(
		value.Field("stringName", value.String("string1")),
		value.Field("objectName", value.StructOf(value.Field("intName", value.Int(4)))),
		value.Field("list", value.Array()),
	)
	got, err := enc.MethodCall("testMethod", []value.Value{param})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	t.Logf("✓ indented output matches (%d lines)", strings.Count(got, "\n")+1)
}

// TestRender_Fragments checks the typed element for each kind on its own
func TestRender_Fragments(t *testing.T) {
	tests := []struct {
		name  string
		input value.Value
		want  string
	}{
		{"nil", value.Nil(), "<nil/>"},
		{"true", value.Bool(true), "<boolean>1</boolean>"},
		{"int", value.Int(-32), "<int>-32</int>"},
		{"large double", value.Double(1e21), "<double>1000000000000000000000.0</double>"},
		{"small double", value.Double(0.000001), "<double>0.000001</double>"},
		{"negative zero", value.Double(math.Copysign(0, -1)), "<double>-0.0</double>"},
		{"empty string", value.String(""), "<string/>"},
		{"escaped", value.String(`a&b>c "q" 'a'`), `<string>a&amp;b&gt;c "q" 'a'</string>`},
		{"carriage return", value.String("a\rb"), "<string><![CDATA[a\rb]]></string>"},
		{"cdata terminator", value.String("<x>]]></x>"), "<string><![CDATA[<x>]]]]><![CDATA[></x>]]></string>"},
		{"empty binary", value.Binary(nil), "<base64/>"},
		{"datetime", value.DateTime(time.Date(1998, time.July, 17, 14, 8, 55, 0, time.UTC)), "<dateTime.iso8601>19980717T14:08:55</dateTime.iso8601>"},
		{"empty array", value.Array(), "<array><data/></array>"},
		{"empty struct", value.StructOf(), "<struct/>"},
		{"empty member name", value.StructOf(value.Field("", value.Int(1))), "<struct><member><name/><value><int>1</int></value></member></struct>"},
		{"escaped member name", value.StructOf(value.Field("a<b", value.Nil())), "<struct><member><name>a&lt;b</name><value><nil/></value></member></struct>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := serializer.Default().Render(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_NonFiniteDouble(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := serializer.Default().Render(value.Double(f))
		assert.ErrorIs(t, err, serializer.ErrUnsupportedType)
	}
}

func TestRenderAny_Unsupported(t *testing.T) {
	_, err := serializer.Default().RenderAny(map[string]any{"f": func() {}})
	require.ErrorIs(t, err, serializer.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `["f"]`)
}

// TestEncoder_MaxDepth checks both the typed and the classified paths
func TestEncoder_MaxDepth(t *testing.T) {
	nest := func(levels int) value.Value {
		v := value.Int(1)
		for i := 0; i < levels; i++ {
			v = value.Array(v)
		}
		return v
	}
	enc := serializer.NewEncoder(serializer.Options{MaxDepth: 3})

	_, err := enc.Render(nest(3))
	require.NoError(t, err)

	_, err = enc.Render(nest(4))
	assert.ErrorIs(t, err, serializer.ErrTooDeep)

	_, err = enc.RenderAny([]any{[]any{[]any{[]any{1}}}})
	assert.ErrorIs(t, err, serializer.ErrTooDeep)

	assert.Equal(t, value.DefaultMaxDepth, serializer.NewEncoder(serializer.Options{}).Options().MaxDepth)
}
