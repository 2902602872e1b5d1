package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Markup accumulates HTML for a component. Text is escaped, Raw is not.
type Markup struct {
	b   strings.Builder
	err error
}

// Raw appends trusted markup
func (m *Markup) Raw(s string) *Markup {
	m.b.WriteString(s)
	return m
}

// Rawf appends trusted markup built with fmt. Every argument is formatted
// with its own verb and then escaped, whatever its type.
func (m *Markup) Rawf(format string, args ...interface{}) *Markup {
	escaped := make([]interface{}, len(args))
	for i, a := range args {
		escaped[i] = escapedArg{a}
	}
	fmt.Fprintf(&m.b, format, escaped...)
	return m
}

// escapedArg formats its value as fmt would and escapes the result
type escapedArg struct {
	v interface{}
}

func (e escapedArg) Format(f fmt.State, verb rune) {
	io.WriteString(f, templ.EscapeString(fmt.Sprintf(fmt.FormatString(f, verb), e.v)))
}

// Text appends escaped text
func (m *Markup) Text(s string) *Markup {
	m.b.WriteString(templ.EscapeString(s))
	return m
}

// Component renders a child component in place
func (m *Markup) Component(ctx context.Context, c templ.Component) *Markup {
	if m.err == nil && c != nil {
		m.err = c.Render(ctx, &m.b)
	}
	return m
}

// WriteTo flushes the markup to w
func (m *Markup) WriteTo(w io.Writer) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	n, err := io.WriteString(w, m.b.String())
	return int64(n), err
}

// Build wraps a markup-producing function as a templ component
func Build(fn func(ctx context.Context, m *Markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m Markup
		fn(ctx, &m)
		_, err := m.WriteTo(w)
		return err
	})
}

// Attr renders name="value" with the value escaped, or nothing when value is empty
func Attr(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, templ.EscapeString(value))
}
