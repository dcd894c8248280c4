package serializer_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/serializer"
	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

func TestMethodResponse_ParameterCount(t *testing.T) {
	enc := serializer.Default()

	for _, params := range [][]value.Value{nil, {value.Int(1), value.Int(2)}} {
		_, err := enc.MethodResponse(params)
		assert.ErrorIs(t, err, serializer.ErrInvalidParameterCount)
	}

	_, err := enc.MethodResponseAny([]any{true, false})
	require.ErrorIs(t, err, serializer.ErrInvalidParameterCount)
	assert.Contains(t, err.Error(), "got 2")

	// the count is checked before any classification
	_, err = enc.MethodResponseAny([]any{func() {}, 1})
	assert.ErrorIs(t, err, serializer.ErrInvalidParameterCount)
}

func TestMethodCall_EmptyParams(t *testing.T) {
	got, err := serializer.Default().MethodCall("system.listMethods", nil)
	require.NoError(t, err)
	assert.Equal(t, "<?xml version=\"1.0\"?>\n<methodCall><methodName>system.listMethods</methodName><params/></methodCall>", got)
}

func TestMethodCall_EscapesMethodName(t *testing.T) {
	got, err := serializer.Default().MethodCall("a<b&c", []value.Value{value.Nil()})
	require.NoError(t, err)
	assert.Contains(t, got, "<methodName>a&lt;b&amp;c</methodName>")
}

func TestMethodCallAny_ReportsParamIndex(t *testing.T) {
	_, err := serializer.Default().MethodCallAny("testMethod", []any{1, "ok", make(chan int)})
	require.ErrorIs(t, err, serializer.ErrUnsupportedType)
	assert.True(t, strings.HasPrefix(err.Error(), "param 2: "), err.Error())
}

func TestMethodCall_HeaderOnOwnLine(t *testing.T) {
	for _, indent := range []string{"", "  "} {
		enc := serializer.NewEncoder(serializer.Options{Indent: indent})
		got, err := enc.MethodCall("testMethod", []value.Value{value.Int(1)})
		require.NoError(t, err)

		header, body, ok := strings.Cut(got, "\n")
		require.True(t, ok)
		assert.Equal(t, `<?xml version="1.0"?>`, header)
		assert.True(t, strings.HasPrefix(body, "<methodCall>"))
	}
}

// TestEncoder_Concurrent shares one encoder between goroutines
func TestEncoder_Concurrent(t *testing.T) {
	enc := serializer.NewEncoder(serializer.Options{Indent: " "})
	param := value.StructOf(
		value.Field("list", value.Array(value.String("string1"), value.Int(3))),
		value.Field("flag", value.Bool(true)),
	)
	want, err := enc.MethodCall("testMethod", []value.Value{param})
	require.NoError(t, err)

	var (
		g   errgroup.Group
		mu  sync.Mutex
		bad int
	)
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			got, err := enc.MethodCall("testMethod", []value.Value{param})
			if err != nil {
				return err
			}
			if got != want {
				mu.Lock()
				bad++
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Zero(t, bad)
}
