package xmlrpc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlrpc "github.com/theoremus-urban-solutions/xmlrpc-serializer"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/serializer"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

const header = "<?xml version=\"1.0\"?>\n"

func TestSerializeMethodCall_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		param any
		want  string
	}{
		{"boolean", true, "<boolean>1</boolean>"},
		{"double", -32.7777, "<double>-32.7777</double>"},
		{"nil", nil, "<nil/>"},
		{"array", []any{"string1", 3}, "<array><data><value><string>string1</string></value><value><int>3</int></value></data></array>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xmlrpc.SerializeMethodCall("testMethod", []any{tt.param})
			require.NoError(t, err)

			want := header + "<methodCall><methodName>testMethod</methodName><params><param><value>" +
				tt.want + "</value></param></params></methodCall>"
			assert.Equal(t, want, got)
		})
	}
}

func TestSerializeMethodResponse(t *testing.T) {
	got, err := xmlrpc.SerializeMethodResponse([]any{map[string]any{"ok": true}})
	require.NoError(t, err)
	assert.Equal(t, header+"<methodResponse><params><param><value><struct><member><name>ok</name>"+
		"<value><boolean>1</boolean></value></member></struct></value></param></params></methodResponse>", got)

	_, err = xmlrpc.SerializeMethodResponse([]any{1, 2})
	assert.ErrorIs(t, err, serializer.ErrInvalidParameterCount)

	_, err = xmlrpc.SerializeMethodResponse(nil)
	assert.ErrorIs(t, err, serializer.ErrInvalidParameterCount)
}

func TestRenderAndClassify(t *testing.T) {
	got, err := xmlrpc.Render("fish & chips")
	require.NoError(t, err)
	assert.Equal(t, "<string>fish &amp; chips</string>", got)

	kind, err := xmlrpc.Classify(3.0)
	require.NoError(t, err)
	assert.Equal(t, value.KindInteger, kind)

	_, err = xmlrpc.Render(struct{ F func() }{})
	assert.ErrorIs(t, err, value.ErrUnsupportedType)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, 2, strings.Count(xmlrpc.Version, "."))
}
