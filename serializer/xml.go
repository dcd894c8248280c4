package serializer

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/value"
)

// Render returns the typed element for v without the surrounding <value>,
// for example <int>3</int> or <array><data>…</data></array>
func (e *Encoder) Render(v value.Value) (string, error) {
	w := e.newWriter()
	if err := e.writeTyped(w, v, 0, 0); err != nil {
		return "", err
	}
	return w.b.String(), nil
}

// RenderAny classifies x and renders the result
func (e *Encoder) RenderAny(x any) (string, error) {
	v, err := value.FromDepth(x, e.opts.MaxDepth)
	if err != nil {
		return "", err
	}
	return e.Render(v)
}

type xmlWriter struct {
	b      strings.Builder
	indent string
}

func (e *Encoder) newWriter() *xmlWriter {
	return &xmlWriter{indent: e.opts.Indent}
}

// line starts a new line at depth when indenting
func (w *xmlWriter) line(depth int) {
	if w.indent == "" {
		return
	}
	if w.b.Len() > 0 {
		w.b.WriteByte('\n')
	}
	for i := 0; i < depth; i++ {
		w.b.WriteString(w.indent)
	}
}

func (w *xmlWriter) open(tag string, depth int) {
	w.line(depth)
	w.b.WriteString("<" + tag + ">")
}

func (w *xmlWriter) close(tag string, depth int) {
	w.line(depth)
	w.b.WriteString("</" + tag + ">")
}

func (w *xmlWriter) empty(tag string, depth int) {
	w.line(depth)
	w.b.WriteString("<" + tag + "/>")
}

// leaf writes an escaped text element on a single line
func (w *xmlWriter) leaf(tag, text string, depth int) {
	if text == "" {
		w.empty(tag, depth)
		return
	}
	w.line(depth)
	w.b.WriteString("<" + tag + ">")
	w.b.WriteString(xmlEscape(text))
	w.b.WriteString("</" + tag + ">")
}

// writeValue writes <value>…</value>. level counts the values enclosing v.
func (e *Encoder) writeValue(w *xmlWriter, v value.Value, depth, level int) error {
	if err := e.checkDepth(level); err != nil {
		return err
	}
	if isCompound(v.Kind()) {
		w.open("value", depth)
		if err := e.writeTyped(w, v, depth+1, level); err != nil {
			return err
		}
		w.close("value", depth)
		return nil
	}
	w.line(depth)
	w.b.WriteString("<value>")
	if err := writeScalar(&w.b, v); err != nil {
		return err
	}
	w.b.WriteString("</value>")
	return nil
}

func (e *Encoder) writeTyped(w *xmlWriter, v value.Value, depth, level int) error {
	if err := e.checkDepth(level); err != nil {
		return err
	}
	switch v.Kind() {
	case value.KindArray:
		w.open("array", depth)
		if v.Len() == 0 {
			w.empty("data", depth+1)
		} else {
			w.open("data", depth+1)
			for i := 0; i < v.Len(); i++ {
				if err := e.writeValue(w, v.Index(i), depth+2, level+1); err != nil {
					return err
				}
			}
			w.close("data", depth+1)
		}
		w.close("array", depth)
	case value.KindStruct:
		if v.Len() == 0 {
			w.empty("struct", depth)
			return nil
		}
		w.open("struct", depth)
		for i := 0; i < v.Len(); i++ {
			m := v.Member(i)
			w.open("member", depth+1)
			w.leaf("name", m.Name, depth+2)
			if err := e.writeValue(w, m.Value, depth+2, level+1); err != nil {
				return err
			}
			w.close("member", depth+1)
		}
		w.close("struct", depth)
	default:
		w.line(depth)
		return writeScalar(&w.b, v)
	}
	return nil
}

// checkDepth allows nodes up to MaxDepth levels below the root
func (e *Encoder) checkDepth(level int) error {
	if level > e.opts.MaxDepth {
		return fmt.Errorf("%w (limit %d)", ErrTooDeep, e.opts.MaxDepth)
	}
	return nil
}

func isCompound(k value.Kind) bool {
	return k == value.KindArray || k == value.KindStruct
}

func writeScalar(b *strings.Builder, v value.Value) error {
	switch v.Kind() {
	case value.KindNil:
		b.WriteString("<nil/>")
	case value.KindBoolean:
		if v.AsBool() {
			b.WriteString("<boolean>1</boolean>")
		} else {
			b.WriteString("<boolean>0</boolean>")
		}
	case value.KindInteger:
		b.WriteString("<int>")
		b.WriteString(strconv.FormatInt(v.AsInt(), 10))
		b.WriteString("</int>")
	case value.KindDouble:
		f := v.AsDouble()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite double %v", ErrUnsupportedType, f)
		}
		b.WriteString("<double>")
		b.WriteString(formatDouble(f))
		b.WriteString("</double>")
	case value.KindString:
		writeString(b, v.AsString())
	case value.KindDateTime:
		b.WriteString("<dateTime.iso8601>")
		b.WriteString(v.AsTime().Format(value.WireTimeLayout))
		b.WriteString("</dateTime.iso8601>")
	case value.KindBinary:
		raw := v.AsBytes()
		if len(raw) == 0 {
			b.WriteString("<base64/>")
			return nil
		}
		b.WriteString("<base64>")
		b.WriteString(base64.StdEncoding.EncodeToString(raw))
		b.WriteString("</base64>")
	default:
		return fmt.Errorf("%w: kind %v", ErrUnsupportedType, v.Kind())
	}
	return nil
}

// formatDouble always keeps a fractional part: 3 becomes 3.0
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func writeString(b *strings.Builder, s string) {
	if s == "" {
		b.WriteString("<string/>")
		return
	}
	b.WriteString("<string>")
	if needsCDATA(s) {
		writeCDATA(b, s)
	} else {
		b.WriteString(xmlEscape(s))
	}
	b.WriteString("</string>")
}

// needsCDATA reports strings that hold markup or span several lines
func needsCDATA(s string) bool {
	return strings.ContainsAny(s, "<\n\r")
}

// writeCDATA splits any "]]>" across two sections so it cannot end the block early
func writeCDATA(b *strings.Builder, s string) {
	b.WriteString("<![CDATA[")
	b.WriteString(strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>"))
	b.WriteString("]]>")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
