package serializer

import (
	"fmt"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

const xmlHeader = `<?xml version="1.0"?>`

// MethodCall builds a complete methodCall document. The method name is
// escaped but otherwise used verbatim.
func (e *Encoder) MethodCall(name string, params []value.Value) (string, error) {
	w := e.newWriter()
	e.writeHeader(w)
	w.open("methodCall", 0)
	w.leaf("methodName", name, 1)
	if err := e.writeParams(w, params); err != nil {
		return "", err
	}
	w.close("methodCall", 0)
	return w.b.String(), nil
}

// MethodResponse builds a methodResponse document around exactly one value
func (e *Encoder) MethodResponse(params []value.Value) (string, error) {
	if len(params) != 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidParameterCount, len(params))
	}
	w := e.newWriter()
	e.writeHeader(w)
	w.open("methodResponse", 0)
	if err := e.writeParams(w, params); err != nil {
		return "", err
	}
	w.close("methodResponse", 0)
	return w.b.String(), nil
}

// MethodCallAny classifies every parameter before building the call
func (e *Encoder) MethodCallAny(name string, params []any) (string, error) {
	values, err := e.fromAll(params)
	if err != nil {
		return "", err
	}
	return e.MethodCall(name, values)
}

// MethodResponseAny classifies the single parameter before building the response
func (e *Encoder) MethodResponseAny(params []any) (string, error) {
	if len(params) != 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidParameterCount, len(params))
	}
	values, err := e.fromAll(params)
	if err != nil {
		return "", err
	}
	return e.MethodResponse(values)
}

func (e *Encoder) fromAll(params []any) ([]value.Value, error) {
	values := make([]value.Value, 0, len(params))
	for i, p := range params {
		v, err := value.FromDepth(p, e.opts.MaxDepth)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// writeHeader puts the XML declaration on its own first line
func (e *Encoder) writeHeader(w *xmlWriter) {
	w.b.WriteString(xmlHeader)
	if w.indent == "" {
		w.b.WriteByte('\n')
	}
}

func (e *Encoder) writeParams(w *xmlWriter, params []value.Value) error {
	if len(params) == 0 {
		w.empty("params", 1)
		return nil
	}
	w.open("params", 1)
	for i, p := range params {
		w.open("param", 2)
		if err := e.writeValue(w, p, 3, 0); err != nil {
			return fmt.Errorf("param %d: %w", i, err)
		}
		w.close("param", 2)
	}
	w.close("params", 1)
	return nil
}
